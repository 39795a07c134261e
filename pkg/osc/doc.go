// Package osc implements the OSC value model used by the OSCQuery tree.
//
// # Value Model
//
// An OSC value is one of a closed set of kinds, each identified by a
// single-character type tag from the OSC 1.0/1.1 specification:
//
//	i int32      f float32    s string     b blob
//	t timetag    l int64      d float64    c char
//	r RGBA color m MIDI       T bool       N nil     I infinitum
//
// Value is a tagged union over these kinds. Every codec operation in this
// package switches exhaustively over Kind; adding a kind requires updating
// the tag table, the scalar encoder, and the scalar decoder together.
//
// # Codecs
//
// The TYPE field of an OSCQuery node is the concatenation of the tags of
// its values ("f", "ff", "ifs", ...). EncodeTypes and DecodeTypes convert
// between a value sequence and that tag string. Decoding recovers type
// structure only: each tag yields a zero-valued placeholder.
//
// The VALUE field is a heterogeneous JSON array of raw scalar payloads.
// Payloads are not self-describing (a JSON number could be an int32, a
// float32, or an int64), so DecodeValues decodes positionally against a
// previously decoded TYPE sequence.
package osc
