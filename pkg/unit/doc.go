// Package unit implements the OSCQuery UNIT extension vocabulary.
//
// A unit is a (category, member) pair from a fixed table of five
// categories: distance, angle, gain, time, and speed. The canonical
// string form is "<category>.<member>", e.g. "distance.cm" or
// "speed.km/h".
//
// Encode and Decode use a single shared token table, so every unit
// round-trips and no two units share a canonical string.
package unit
