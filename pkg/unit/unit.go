package unit

import (
	"fmt"
	"sort"
	"strings"
)

// Category is one of the five unit categories of the OSCQuery proposal.
type Category uint8

const (
	CategoryDistance Category = iota
	CategoryAngle
	CategoryGain
	CategoryTime
	CategorySpeed
)

// String returns the lowercase category token used in canonical strings.
func (c Category) String() string {
	switch c {
	case CategoryDistance:
		return "distance"
	case CategoryAngle:
		return "angle"
	case CategoryGain:
		return "gain"
	case CategoryTime:
		return "time"
	case CategorySpeed:
		return "speed"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Unit is a member of one of the five unit categories. The concrete
// types are DistanceUnit, AngleUnit, GainUnit, TimeUnit and SpeedUnit;
// the set is closed.
type Unit interface {
	// Category returns the unit's category.
	Category() Category

	// token returns the member abbreviation ("cm", "km/h", ...).
	// Unexported to seal the interface.
	token() string
}

// Encode returns the canonical "<category>.<member>" string for a unit.
func Encode(u Unit) string {
	return u.Category().String() + "." + u.token()
}

// DistanceUnit is a distance measurement unit.
type DistanceUnit uint8

const (
	Meter DistanceUnit = iota
	Kilometer
	Decimeter
	Centimeter
	Millimeter
	Micrometer
	Nanometer
	Picometer
	Inches
	Feet
	Miles
	Pixels
)

var distanceTokens = [...]string{
	"m", "km", "dm", "cm", "mm", "um", "nm", "pm",
	"inches", "feet", "miles", "pixels",
}

func (d DistanceUnit) Category() Category { return CategoryDistance }
func (d DistanceUnit) token() string      { return distanceTokens[d] }
func (d DistanceUnit) String() string     { return Encode(d) }

// AngleUnit is an angle measurement unit.
type AngleUnit uint8

const (
	Degree AngleUnit = iota
	Radian
)

var angleTokens = [...]string{"degree", "radian"}

func (a AngleUnit) Category() Category { return CategoryAngle }
func (a AngleUnit) token() string      { return angleTokens[a] }
func (a AngleUnit) String() string     { return Encode(a) }

// GainUnit is a gain measurement unit.
type GainUnit uint8

const (
	// Linear is a normalized amplitude mapping to (-inf, 0dB].
	Linear GainUnit = iota
	// Midigain is the MIDI-adapted gain mapping.
	Midigain
	// Db is decibels, clipped to a minimum headroom value.
	Db
	// DbRaw is decibels without clipping.
	DbRaw
)

var gainTokens = [...]string{"linear", "midigain", "db", "db-raw"}

func (g GainUnit) Category() Category { return CategoryGain }
func (g GainUnit) token() string      { return gainTokens[g] }
func (g GainUnit) String() string     { return Encode(g) }

// TimeUnit is a time or pitch measurement unit.
type TimeUnit uint8

const (
	Second TimeUnit = iota
	Bark
	Bpm
	Cents
	Hz
	Mel
	Midinote
	Millisecond
	Speed
	Samples
)

var timeTokens = [...]string{
	"second", "bark", "bpm", "cents", "hz",
	"mel", "midinote", "ms", "speed", "samples",
}

func (t TimeUnit) Category() Category { return CategoryTime }
func (t TimeUnit) token() string      { return timeTokens[t] }
func (t TimeUnit) String() string     { return Encode(t) }

// SpeedUnit is a speed measurement unit.
type SpeedUnit uint8

const (
	MetersPerSecond SpeedUnit = iota
	MilesPerHour
	KilometersPerHour
	Knots
	FeetPerSecond
	FeetPerHour
	PixelsPerSecond
)

var speedTokens = [...]string{
	"m/s", "mph", "km/h", "kn", "ft/s", "ft/h", "pix/s",
}

func (s SpeedUnit) Category() Category { return CategorySpeed }
func (s SpeedUnit) token() string      { return speedTokens[s] }
func (s SpeedUnit) String() string     { return Encode(s) }

// UnknownUnitError is returned when decoding a unit string whose
// category or member token is not part of the vocabulary.
type UnknownUnitError struct {
	// Token is the offending category or member token.
	Token string
	// Allowed lists the valid tokens for that position.
	Allowed []string
}

// Error returns the offending token and the valid alphabet.
func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit variant %q (expected one of %s)",
		e.Token, strings.Join(e.Allowed, ", "))
}

var categoryTokens = []string{"distance", "angle", "gain", "time", "speed"}

// memberTables maps each category token to its member decode table.
var memberTables = map[string]map[string]Unit{}

func init() {
	register := func(cat string, tokens []string, mk func(i int) Unit) {
		table := make(map[string]Unit, len(tokens))
		for i, tok := range tokens {
			table[tok] = mk(i)
		}
		memberTables[cat] = table
	}
	register("distance", distanceTokens[:], func(i int) Unit { return DistanceUnit(i) })
	register("angle", angleTokens[:], func(i int) Unit { return AngleUnit(i) })
	register("gain", gainTokens[:], func(i int) Unit { return GainUnit(i) })
	register("time", timeTokens[:], func(i int) Unit { return TimeUnit(i) })
	register("speed", speedTokens[:], func(i int) Unit { return SpeedUnit(i) })
}

// Decode parses a canonical "<category>.<member>" string. The category
// prefix is matched first; an unknown category or member fails with an
// UnknownUnitError naming the offending token and the valid alphabet
// for that position.
func Decode(s string) (Unit, error) {
	cat, member, ok := strings.Cut(s, ".")
	if !ok {
		return nil, &UnknownUnitError{Token: s, Allowed: categoryTokens}
	}
	table, ok := memberTables[cat]
	if !ok {
		return nil, &UnknownUnitError{Token: cat, Allowed: categoryTokens}
	}
	u, ok := table[member]
	if !ok {
		return nil, &UnknownUnitError{Token: member, Allowed: sortedKeys(table)}
	}
	return u, nil
}

func sortedKeys(m map[string]Unit) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
