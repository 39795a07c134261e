package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allUnits enumerates every member of every category.
func allUnits() []Unit {
	var units []Unit
	for d := range distanceTokens {
		units = append(units, DistanceUnit(d))
	}
	for a := range angleTokens {
		units = append(units, AngleUnit(a))
	}
	for g := range gainTokens {
		units = append(units, GainUnit(g))
	}
	for t := range timeTokens {
		units = append(units, TimeUnit(t))
	}
	for s := range speedTokens {
		units = append(units, SpeedUnit(s))
	}
	return units
}

func TestRoundTripAllMembers(t *testing.T) {
	for _, u := range allUnits() {
		s := Encode(u)
		decoded, err := Decode(s)
		require.NoError(t, err, "decode %q", s)
		assert.Equal(t, u, decoded, "round trip %q", s)
	}
}

func TestEncodeInjective(t *testing.T) {
	seen := make(map[string]Unit)
	for _, u := range allUnits() {
		s := Encode(u)
		prev, dup := seen[s]
		require.False(t, dup, "units %v and %v share canonical string %q", prev, u, s)
		seen[s] = u
	}
}

func TestCanonicalStrings(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{Kilometer, "distance.km"},
		{Centimeter, "distance.cm"},
		{Inches, "distance.inches"},
		{Degree, "angle.degree"},
		{DbRaw, "gain.db-raw"},
		{Millisecond, "time.ms"},
		{Samples, "time.samples"},
		{MetersPerSecond, "speed.m/s"},
		{KilometersPerHour, "speed.km/h"},
		{Knots, "speed.kn"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Encode(tt.unit))
	}
}

func TestDecode(t *testing.T) {
	u, err := Decode("speed.km/h")
	require.NoError(t, err)
	assert.Equal(t, KilometersPerHour, u)
	assert.Equal(t, CategorySpeed, u.Category())

	u, err = Decode("time.speed")
	require.NoError(t, err)
	assert.Equal(t, Speed, u)
}

func TestDecodeUnknownCategory(t *testing.T) {
	_, err := Decode("bogus.x")
	var unitErr *UnknownUnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "bogus", unitErr.Token)
	assert.Equal(t, categoryTokens, unitErr.Allowed)
}

func TestDecodeUnknownMember(t *testing.T) {
	_, err := Decode("distance.lightyear")
	var unitErr *UnknownUnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "lightyear", unitErr.Token)
	assert.Contains(t, unitErr.Allowed, "km")
}

func TestDecodeMissingSeparator(t *testing.T) {
	_, err := Decode("distance")
	var unitErr *UnknownUnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "distance", unitErr.Token)
}
