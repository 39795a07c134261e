package model

import (
	"encoding/json"
	"fmt"
)

// Access describes the access rights of a node, serialized as the
// integer ACCESS field.
type Access uint8

const (
	// NoAccess means the address carries no readable or writable value.
	NoAccess Access = 0

	// Read allows reading the value via the underlying OSC transport.
	Read Access = 1

	// Write allows writing the value via the underlying OSC transport.
	Write Access = 2

	// ReadWrite allows both.
	ReadWrite Access = 3
)

// String returns the access level name.
func (a Access) String() string {
	switch a {
	case NoAccess:
		return "NO_ACCESS"
	case Read:
		return "READ"
	case Write:
		return "WRITE"
	case ReadWrite:
		return "READWRITE"
	default:
		return fmt.Sprintf("Access(%d)", uint8(a))
	}
}

// UnmarshalJSON validates that the wire value is in range 0-3.
func (a *Access) UnmarshalJSON(data []byte) error {
	var v uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid ACCESS: %w", err)
	}
	if v > uint8(ReadWrite) {
		return fmt.Errorf("invalid ACCESS value %d (want 0-3)", v)
	}
	*a = Access(v)
	return nil
}
