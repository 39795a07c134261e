package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revilo196/oscquery-go/pkg/osc"
	"github.com/revilo196/oscquery-go/pkg/unit"
)

func TestSerializeNode(t *testing.T) {
	min, max := float32(100), float32(200)
	node := &Node{
		description: "A test node",
		fullPath:    "/test/node",
		access:      ReadWrite,
		children: map[string]*Node{
			"child_node": {
				description: "A child node",
				fullPath:    "/test/node/child_node",
				access:      ReadWrite,
				types:       []osc.Value{osc.Int(0)},
				values:      []osc.Value{osc.Int(123)},
				ranges:      []Range{{Min: &min, Max: &max}},
			},
		},
		types:  []osc.Value{osc.Float(0), osc.Float(0)},
		values: []osc.Value{osc.Float(3.1234), osc.Float(2.7182)},
		units:  []unit.Unit{unit.Meter, unit.KilometersPerHour},
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.Equal(t,
		`{"DESCRIPTION":"A test node","FULL_PATH":"/test/node","ACCESS":3,`+
			`"CONTENTS":{"child_node":{"DESCRIPTION":"A child node",`+
			`"FULL_PATH":"/test/node/child_node","ACCESS":3,"TYPE":"i","VALUE":[123],`+
			`"RANGE":[{"MIN":100,"MAX":200}]}},`+
			`"TYPE":"ff","VALUE":[3.1234,2.7182],"UNIT":["distance.m","speed.km/h"]}`,
		string(data))
}

func TestAddCreatesIntermediateNodes(t *testing.T) {
	root := NewRoot(nil)
	require.NoError(t, root.Add(NewParameter("/a/b/c", osc.Int(1))))

	a := root.Child("a")
	require.NotNil(t, a)
	assert.Equal(t, "/a", a.FullPath())
	assert.Equal(t, NoAccess, a.Access())
	assert.Empty(t, a.Types())

	b := a.Child("b")
	require.NotNil(t, b)
	assert.Equal(t, "/a/b", b.FullPath())

	c := b.Child("c")
	require.NotNil(t, c)
	assert.Equal(t, "/a/b/c", c.FullPath())
	assert.Equal(t, "i", c.TypeString())
}

func TestTreeDeterminism(t *testing.T) {
	// Inserting disjoint addresses in any order yields identical JSON.
	params := []Parameter{
		NewParameter("/zebra", osc.Int(1)),
		NewParameter("/group/test", osc.Float(1)).WithAccess(ReadWrite),
		NewParameter("/group/alpha", osc.String("x")),
		NewParameter("/apple/pie", osc.Bool(true)),
	}

	forward := NewRoot(nil)
	for _, p := range params {
		require.NoError(t, forward.Add(p))
	}
	backward := NewRoot(nil)
	for i := len(params) - 1; i >= 0; i-- {
		require.NoError(t, backward.Add(params[i]))
	}

	fj, err := json.Marshal(forward)
	require.NoError(t, err)
	bj, err := json.Marshal(backward)
	require.NoError(t, err)
	assert.Equal(t, string(fj), string(bj))
}

func TestAccumulation(t *testing.T) {
	root := NewRoot(nil)
	require.NoError(t, root.Add(NewParameter("/multi", osc.Float(1)).
		WithDescription("first").
		WithMinMax(0, 1).
		WithUnit(unit.Meter)))
	require.NoError(t, root.Add(NewParameter("/multi", osc.Int(2)).
		WithDescription("second").
		WithAccess(Read)))

	node, err := root.Get("/multi")
	require.NoError(t, err)

	// Channels accumulate in insertion order.
	assert.Equal(t, "fi", node.TypeString())
	require.Len(t, node.Values(), 2)
	assert.Equal(t, float32(1), node.Values()[0].Float())
	assert.Equal(t, int32(2), node.Values()[1].Int())
	assert.Len(t, node.Types(), len(node.Values()))

	// Optional sequences only grow when declared, never past the types.
	assert.Len(t, node.Ranges(), 1)
	assert.Len(t, node.Units(), 1)

	// Description and access are last write wins.
	assert.Equal(t, "second", node.Description())
	assert.Equal(t, Read, node.Access())
}

func TestGetRoot(t *testing.T) {
	root := NewRoot(nil)

	node, err := root.Get("/")
	require.NoError(t, err)
	assert.Same(t, root, node)

	node, err = root.Get("")
	require.NoError(t, err)
	assert.Same(t, root, node)
}

func TestGetInsertedAddress(t *testing.T) {
	root := NewRoot(nil)
	addrs := []string{"/group/test", "/group/test/subtest", "/other"}
	for _, addr := range addrs {
		require.NoError(t, root.Add(NewParameter(addr, osc.Float(1))))
	}
	for _, addr := range addrs {
		node, err := root.Get(addr)
		require.NoError(t, err)
		assert.Equal(t, addr, node.FullPath())
	}

	// A trailing slash resolves to the same node.
	node, err := root.Get("/group/test/")
	require.NoError(t, err)
	assert.Equal(t, "/group/test", node.FullPath())
}

func TestGetBadAddress(t *testing.T) {
	root := NewRoot(nil)
	require.NoError(t, root.Add(NewParameter("/present", osc.Int(1))))

	_, err := root.Get("/missing/address")
	var badAddr *BadAddressError
	require.ErrorAs(t, err, &badAddr)
	assert.Equal(t, "/missing/address", badAddr.Path)

	_, err = root.Get("/present/deeper")
	require.ErrorAs(t, err, &badAddr)
	assert.Equal(t, "/present/deeper", badAddr.Path)
}

func TestScenarioSingleParameter(t *testing.T) {
	root := NewRoot(nil)
	require.NoError(t, root.Add(NewParameter("/group/test", osc.Float(1)).
		WithDescription("d").
		WithMinMax(0, 10).
		WithAccess(ReadWrite).
		WithUnit(unit.Centimeter)))

	node, err := root.Get("/group/test")
	require.NoError(t, err)

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.Equal(t,
		`{"DESCRIPTION":"d","FULL_PATH":"/group/test","ACCESS":3,"TYPE":"f",`+
			`"VALUE":[1],"RANGE":[{"MIN":0,"MAX":10}],"UNIT":["distance.cm"]}`,
		string(data))
}

func TestScenarioRepeatedInsert(t *testing.T) {
	root := NewRoot(nil)
	require.NoError(t, root.Add(NewParameter("/group/test", osc.Float(1))))
	require.NoError(t, root.Add(NewParameter("/group/test", osc.Float(2))))

	node, err := root.Get("/group/test")
	require.NoError(t, err)

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"TYPE":"ff"`)
	assert.Contains(t, string(data), `"VALUE":[1,2]`)
}

func TestUnmarshalRoundTrip(t *testing.T) {
	root := NewRoot(NewHostInfo("Server", "127.0.0.1", 9000).WithExtAccess().WithExtValue())
	require.NoError(t, root.Add(NewParameter("/group/test", osc.Float(1)).
		WithDescription("d").
		WithMinMax(0, 10).
		WithAccess(ReadWrite).
		WithUnit(unit.Centimeter)))
	require.NoError(t, root.Add(NewParameter("/group/flags", osc.Bool(true))))
	require.NoError(t, root.Add(NewParameter("/name", osc.String("osc"))))

	data, err := json.Marshal(root)
	require.NoError(t, err)

	var decoded Node
	require.NoError(t, json.Unmarshal(data, &decoded))

	again, err := json.Marshal(&decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))

	node, err := decoded.Get("/group/test")
	require.NoError(t, err)
	assert.Equal(t, "f", node.TypeString())
	require.Len(t, node.Values(), 1)
	assert.Equal(t, float32(1), node.Values()[0].Float())
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown type tag", `{"DESCRIPTION":"","FULL_PATH":"/x","ACCESS":0,"TYPE":"q"}`},
		{"empty type string", `{"DESCRIPTION":"","FULL_PATH":"/x","ACCESS":0,"TYPE":""}`},
		{"value without type", `{"DESCRIPTION":"","FULL_PATH":"/x","ACCESS":0,"VALUE":[1]}`},
		{"access out of range", `{"DESCRIPTION":"","FULL_PATH":"/x","ACCESS":7}`},
		{"unknown range key", `{"DESCRIPTION":"","FULL_PATH":"/x","ACCESS":0,"TYPE":"f","RANGE":[{"MID":1}]}`},
		{"unknown unit", `{"DESCRIPTION":"","FULL_PATH":"/x","ACCESS":0,"UNIT":["bogus.x"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node Node
			assert.Error(t, json.Unmarshal([]byte(tt.data), &node))
		})
	}
}
