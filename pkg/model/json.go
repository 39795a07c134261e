package model

import (
	"encoding/json"
	"fmt"

	"github.com/revilo196/oscquery-go/pkg/osc"
	"github.com/revilo196/oscquery-go/pkg/unit"
)

// nodeJSON is the wire shape of a node. Field order fixes the key order
// of the serialized object; CONTENTS maps marshal with sorted keys, so
// the same tree always produces byte-identical JSON.
type nodeJSON struct {
	Description string           `json:"DESCRIPTION"`
	FullPath    string           `json:"FULL_PATH"`
	Access      Access           `json:"ACCESS"`
	Contents    map[string]*Node `json:"CONTENTS,omitempty"`
	Type        string           `json:"TYPE,omitempty"`
	Value       []any            `json:"VALUE,omitempty"`
	Range       []Range          `json:"RANGE,omitempty"`
	Unit        []string         `json:"UNIT,omitempty"`
	HostInfo    *HostInfo        `json:"HOST_INFO,omitempty"`
}

// MarshalJSON serializes the node and its subtree into the OSCQuery
// object shape. Optional fields are omitted when absent; DESCRIPTION,
// FULL_PATH and ACCESS are always present.
func (n *Node) MarshalJSON() ([]byte, error) {
	aux := nodeJSON{
		Description: n.description,
		FullPath:    n.fullPath,
		Access:      n.access,
		Contents:    n.children,
		Type:        osc.EncodeTypes(n.types),
		Range:       n.ranges,
		HostInfo:    n.hostInfo,
	}
	if n.values != nil {
		aux.Value = osc.EncodeValues(n.values)
	}
	if len(n.units) > 0 {
		aux.Unit = make([]string, len(n.units))
		for i, u := range n.units {
			aux.Unit[i] = unit.Encode(u)
		}
	}
	return json.Marshal(aux)
}

// nodeWire mirrors nodeJSON for decoding; VALUE is kept raw because its
// elements can only be decoded positionally against TYPE.
type nodeWire struct {
	Description string            `json:"DESCRIPTION"`
	FullPath    string            `json:"FULL_PATH"`
	Access      *Access           `json:"ACCESS"`
	Contents    map[string]*Node  `json:"CONTENTS"`
	Type        *string           `json:"TYPE"`
	Value       []json.RawMessage `json:"VALUE"`
	Range       []Range           `json:"RANGE"`
	Unit        []string          `json:"UNIT"`
	HostInfo    *HostInfo         `json:"HOST_INFO"`
}

// UnmarshalJSON reconstructs a subtree from the OSCQuery object shape.
// TYPE is decoded first; VALUE is then decoded positionally against it,
// closing the gap that raw scalar payloads are not self-describing.
func (n *Node) UnmarshalJSON(data []byte) error {
	var aux nodeWire
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	out := Node{
		description: aux.Description,
		fullPath:    aux.FullPath,
		children:    aux.Contents,
		ranges:      aux.Range,
		hostInfo:    aux.HostInfo,
	}
	if aux.Access != nil {
		out.access = *aux.Access
	}

	if aux.Type != nil {
		types, err := osc.DecodeTypes(*aux.Type)
		if err != nil {
			return fmt.Errorf("node %q: %w", aux.FullPath, err)
		}
		out.types = types

		if aux.Value != nil {
			values, err := osc.DecodeValues(types, aux.Value)
			if err != nil {
				return fmt.Errorf("node %q: %w", aux.FullPath, err)
			}
			out.values = values
		}
	} else if aux.Value != nil {
		return fmt.Errorf("node %q: VALUE present without TYPE", aux.FullPath)
	}

	for _, s := range aux.Unit {
		u, err := unit.Decode(s)
		if err != nil {
			return fmt.Errorf("node %q: %w", aux.FullPath, err)
		}
		out.units = append(out.units, u)
	}

	*n = out
	return nil
}
