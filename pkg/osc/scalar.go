package osc

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// EncodeValues converts a value sequence into the raw scalar payloads of
// the VALUE array, dropping type tags. The result is in tag order and is
// suitable for direct JSON marshaling:
//
//	i,l   JSON number        f,d  JSON number
//	s     JSON string        b    base64 string
//	t     RFC 3339 string    c    one-character string
//	r     "#rrggbbaa" string m    [port, status, data1, data2]
//	T     JSON bool          N,I  JSON null
func EncodeValues(values []Value) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v.scalar()
	}
	return out
}

func (v Value) scalar() any {
	switch v.kind {
	case KindInt:
		return int32(v.num)
	case KindFloat:
		return float32(v.flt)
	case KindString:
		return v.str
	case KindBlob:
		return v.blob
	case KindTime:
		return v.tt
	case KindLong:
		return v.num
	case KindDouble:
		return v.flt
	case KindChar:
		return string(rune(v.num))
	case KindColor:
		return v.col.hexString()
	case KindMidi:
		return [4]uint8{v.midi.Port, v.midi.Status, v.midi.Data1, v.midi.Data2}
	case KindBool:
		return v.b
	case KindNil, KindInf:
		return nil
	}
	panic(fmt.Sprintf("osc: no scalar form for kind %v", v.kind))
}

func (c Color) hexString() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func parseColor(s string) (Color, error) {
	if len(s) != 9 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q: want \"#rrggbbaa\"", s)
	}
	raw, err := hex.DecodeString(s[1:])
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}, nil
}

// DecodeValues decodes a VALUE array positionally against a decoded TYPE
// sequence. The scalar payloads are not self-describing, so the kind of
// raw[i] is taken from types[i]; the two slices must have equal length.
func DecodeValues(types []Value, raw []json.RawMessage) ([]Value, error) {
	if len(raw) != len(types) {
		return nil, fmt.Errorf("VALUE length %d does not match TYPE length %d", len(raw), len(types))
	}
	values := make([]Value, len(types))
	for i, t := range types {
		v, err := decodeScalar(t.Kind(), raw[i])
		if err != nil {
			return nil, fmt.Errorf("value %d (tag %c): %w", i, t.Tag(), err)
		}
		values[i] = v
	}
	return values, nil
}

func decodeScalar(kind Kind, raw json.RawMessage) (Value, error) {
	switch kind {
	case KindInt:
		var x int32
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		return Int(x), nil
	case KindFloat:
		var x float32
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		return Float(x), nil
	case KindString:
		var x string
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		return String(x), nil
	case KindBlob:
		var x []byte
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		return Blob(x), nil
	case KindTime:
		var x time.Time
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		return Time(x), nil
	case KindLong:
		var x int64
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		return Long(x), nil
	case KindDouble:
		var x float64
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		return Double(x), nil
	case KindChar:
		var x string
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		r, size := utf8.DecodeRuneInString(x)
		if size == 0 || size != len(x) {
			return Value{}, fmt.Errorf("invalid char %q: want exactly one character", x)
		}
		return Char(r), nil
	case KindColor:
		var x string
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		c, err := parseColor(x)
		if err != nil {
			return Value{}, err
		}
		return ColorValue(c), nil
	case KindMidi:
		var x []int
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		if len(x) != 4 {
			return Value{}, fmt.Errorf("invalid MIDI message: want 4 bytes, got %d", len(x))
		}
		for _, b := range x {
			if b < 0 || b > 255 {
				return Value{}, fmt.Errorf("invalid MIDI byte %d", b)
			}
		}
		return MidiValue(MidiMessage{Port: uint8(x[0]), Status: uint8(x[1]), Data1: uint8(x[2]), Data2: uint8(x[3])}), nil
	case KindBool:
		var x bool
		if err := json.Unmarshal(raw, &x); err != nil {
			return Value{}, err
		}
		return Bool(x), nil
	case KindNil:
		return Nil(), nil
	case KindInf:
		return Inf(), nil
	}
	return Value{}, fmt.Errorf("unsupported kind %v", kind)
}
