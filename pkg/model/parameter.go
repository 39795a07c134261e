package model

import (
	"github.com/revilo196/oscquery-go/pkg/osc"
	"github.com/revilo196/oscquery-go/pkg/unit"
)

// Parameter describes a single OSC endpoint for insertion into the tree:
// an address, one typed value, and optional description, access, range
// and unit. A parameter is built once via the With* chain and consumed
// by Node.Add.
//
// The With* methods overwrite their field; accumulation of channels
// happens only at insertion. Configuration order does not matter.
type Parameter struct {
	address     string
	value       osc.Value
	description string
	access      Access
	valueRange  *Range
	valueUnit   unit.Unit
}

// NewParameter creates a parameter for the given address and value with
// an empty description and unset access, range and unit.
func NewParameter(address string, value osc.Value) Parameter {
	return Parameter{address: address, value: value}
}

// WithDescription sets the parameter description.
func (p Parameter) WithDescription(description string) Parameter {
	p.description = description
	return p
}

// WithAccess sets the access rights. An unset access inserts as
// NoAccess.
func (p Parameter) WithAccess(access Access) Parameter {
	p.access = access
	return p
}

// WithMinMax sets the value range to the given bounds.
func (p Parameter) WithMinMax(min, max float32) Parameter {
	r := MinMax(min, max)
	p.valueRange = &r
	return p
}

// WithUnit sets the physical unit of the value.
func (p Parameter) WithUnit(u unit.Unit) Parameter {
	p.valueUnit = u
	return p
}

// Address returns the parameter's OSC address.
func (p Parameter) Address() string { return p.address }

// Value returns the parameter's typed value.
func (p Parameter) Value() osc.Value { return p.value }
