package osc

import (
	"fmt"
	"time"
)

// Kind identifies the runtime kind of an OSC value.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBlob
	KindTime
	KindLong
	KindDouble
	KindChar
	KindColor
	KindMidi
	KindBool
	KindNil
	KindInf
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBlob:
		return "Blob"
	case KindTime:
		return "Time"
	case KindLong:
		return "Long"
	case KindDouble:
		return "Double"
	case KindChar:
		return "Char"
	case KindColor:
		return "Color"
	case KindMidi:
		return "Midi"
	case KindBool:
		return "Bool"
	case KindNil:
		return "Nil"
	case KindInf:
		return "Inf"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Color is an RGBA color payload (OSC type tag 'r').
type Color struct {
	R, G, B, A uint8
}

// MidiMessage is a 4-byte MIDI message payload (OSC type tag 'm').
type MidiMessage struct {
	Port, Status, Data1, Data2 uint8
}

// Value is a tagged union over the supported OSC value kinds.
// The zero Value is Int(0).
type Value struct {
	kind Kind

	num  int64   // Int, Long, Char (code point)
	flt  float64 // Float, Double
	str  string  // String
	blob []byte  // Blob
	tt   time.Time
	b    bool
	col  Color
	midi MidiMessage
}

// Int returns an int32 value.
func Int(v int32) Value { return Value{kind: KindInt, num: int64(v)} }

// Float returns a float32 value.
func Float(v float32) Value { return Value{kind: KindFloat, flt: float64(v)} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, str: v} }

// Blob returns a byte blob value.
func Blob(v []byte) Value { return Value{kind: KindBlob, blob: v} }

// Time returns an OSC time tag value.
func Time(v time.Time) Value { return Value{kind: KindTime, tt: v} }

// Long returns an int64 value.
func Long(v int64) Value { return Value{kind: KindLong, num: v} }

// Double returns a float64 value.
func Double(v float64) Value { return Value{kind: KindDouble, flt: v} }

// Char returns a single-character value.
func Char(v rune) Value { return Value{kind: KindChar, num: int64(v)} }

// ColorValue returns an RGBA color value.
func ColorValue(v Color) Value { return Value{kind: KindColor, col: v} }

// MidiValue returns a MIDI message value.
func MidiValue(v MidiMessage) Value { return Value{kind: KindMidi, midi: v} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Nil returns the nil value.
func Nil() Value { return Value{kind: KindNil} }

// Inf returns the infinitum value.
func Inf() Value { return Value{kind: KindInf} }

// Kind returns the runtime kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Payload accessors. Each returns the stored payload for its kind and the
// zero payload for any other kind; callers switch on Kind first.

// Int returns the int32 payload.
func (v Value) Int() int32 { return int32(v.num) }

// Float returns the float32 payload.
func (v Value) Float() float32 { return float32(v.flt) }

// String returns the string payload.
func (v Value) String() string { return v.str }

// Blob returns the blob payload.
func (v Value) Blob() []byte { return v.blob }

// Time returns the time tag payload.
func (v Value) Time() time.Time { return v.tt }

// Long returns the int64 payload.
func (v Value) Long() int64 { return v.num }

// Double returns the float64 payload.
func (v Value) Double() float64 { return v.flt }

// Char returns the character payload.
func (v Value) Char() rune { return rune(v.num) }

// Color returns the color payload.
func (v Value) Color() Color { return v.col }

// Midi returns the MIDI message payload.
func (v Value) Midi() MidiMessage { return v.midi }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }
