package osc

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TagAlphabet lists every valid type tag character in table order.
const TagAlphabet = "ifsbtldcrmTNI"

// ErrEmptyTypeString is returned when decoding an empty type tag string.
// An absent TYPE field and an empty one are different conditions; callers
// must check for absence before decoding.
var ErrEmptyTypeString = errors.New("empty OSC type tag string")

// UnknownTagError is returned when a type tag character is not part of
// the supported alphabet.
type UnknownTagError struct {
	Tag byte
}

// Error returns the offending character and the valid alphabet.
func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown OSC type tag %q (valid tags: %s)", e.Tag, TagAlphabet)
}

// Tag returns the single-character OSC type tag for the value's kind.
// Booleans always encode as 'T'; the payload is carried in VALUE.
func (v Value) Tag() byte {
	switch v.kind {
	case KindInt:
		return 'i'
	case KindFloat:
		return 'f'
	case KindString:
		return 's'
	case KindBlob:
		return 'b'
	case KindTime:
		return 't'
	case KindLong:
		return 'l'
	case KindDouble:
		return 'd'
	case KindChar:
		return 'c'
	case KindColor:
		return 'r'
	case KindMidi:
		return 'm'
	case KindBool:
		return 'T'
	case KindNil:
		return 'N'
	case KindInf:
		return 'I'
	}
	panic(fmt.Sprintf("osc: no tag for kind %v", v.kind))
}

// EncodeTypes concatenates the type tags of a value sequence into a TYPE
// string ("f", "ff", "ifs", ...). An empty sequence yields "".
func EncodeTypes(values []Value) string {
	var sb strings.Builder
	sb.Grow(len(values))
	for _, v := range values {
		sb.WriteByte(v.Tag())
	}
	return sb.String()
}

// ntpEpochPlaceholder is the placeholder for decoded 't' tags: NTP
// seconds 2208988800 (the Unix epoch).
var ntpEpochPlaceholder = time.Unix(0, 0).UTC()

// placeholder returns the zero/default value for a tag character.
func placeholder(tag byte) (Value, bool) {
	switch tag {
	case 'i':
		return Int(0), true
	case 'f':
		return Float(0), true
	case 's':
		return String(""), true
	case 'b':
		return Blob(nil), true
	case 't':
		return Time(ntpEpochPlaceholder), true
	case 'l':
		return Long(0), true
	case 'd':
		return Double(0), true
	case 'c':
		return Char(' '), true
	case 'r':
		return ColorValue(Color{}), true
	case 'm':
		return MidiValue(MidiMessage{}), true
	case 'T':
		return Bool(true), true
	case 'N':
		return Nil(), true
	case 'I':
		return Inf(), true
	}
	return Value{}, false
}

// DecodeTypes converts a TYPE string into a sequence of placeholder
// values, one per tag character. The placeholders carry type structure
// only, not the original payloads; DecodeValues fills those in from the
// VALUE array.
//
// An empty string is an error: a node without channels omits the TYPE
// field entirely rather than emitting "".
func DecodeTypes(s string) ([]Value, error) {
	if s == "" {
		return nil, ErrEmptyTypeString
	}
	values := make([]Value, 0, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := placeholder(s[i])
		if !ok {
			return nil, &UnknownTagError{Tag: s[i]}
		}
		values = append(values, v)
	}
	return values, nil
}
