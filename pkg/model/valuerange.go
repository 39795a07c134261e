package model

import (
	"encoding/json"
	"fmt"
)

// Range describes the numeric range of one channel. Unset bounds are
// omitted from the serialized form. Keys are ordered MIN < MAX < VALS.
type Range struct {
	// Min is the inclusive lower bound, nil when unset.
	Min *float32

	// Max is the inclusive upper bound, nil when unset.
	Max *float32

	// Vals enumerates the permitted discrete values, nil when unset.
	Vals []float32
}

// MinMax returns a range with both bounds set.
func MinMax(min, max float32) Range {
	return Range{Min: &min, Max: &max}
}

// UnknownRangeKeyError is returned when decoding a RANGE object that
// contains a key other than MIN, MAX or VALS.
type UnknownRangeKeyError struct {
	Key string
}

// Error returns the offending key.
func (e *UnknownRangeKeyError) Error() string {
	return fmt.Sprintf("unknown RANGE key %q (valid keys: MIN, MAX, VALS)", e.Key)
}

// MarshalJSON emits the bounds as an ordered object, omitting unset ones.
func (r Range) MarshalJSON() ([]byte, error) {
	aux := struct {
		Min  *float32  `json:"MIN,omitempty"`
		Max  *float32  `json:"MAX,omitempty"`
		Vals []float32 `json:"VALS,omitempty"`
	}{r.Min, r.Max, r.Vals}
	return json.Marshal(aux)
}

// UnmarshalJSON reconstructs the bounds, rejecting unknown keys.
func (r *Range) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Range{}
	for key, val := range raw {
		switch key {
		case "MIN":
			if err := json.Unmarshal(val, &out.Min); err != nil {
				return fmt.Errorf("invalid MIN: %w", err)
			}
		case "MAX":
			if err := json.Unmarshal(val, &out.Max); err != nil {
				return fmt.Errorf("invalid MAX: %w", err)
			}
		case "VALS":
			if err := json.Unmarshal(val, &out.Vals); err != nil {
				return fmt.Errorf("invalid VALS: %w", err)
			}
		default:
			return &UnknownRangeKeyError{Key: key}
		}
	}
	*r = out
	return nil
}
