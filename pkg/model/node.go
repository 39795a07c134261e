package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/revilo196/oscquery-go/pkg/osc"
	"github.com/revilo196/oscquery-go/pkg/unit"
)

// BadAddressError is returned when a lookup descends to a path segment
// that has no matching child. Path is the address as originally queried.
type BadAddressError struct {
	Path string
}

// Error returns the unresolvable address.
func (e *BadAddressError) Error() string {
	return fmt.Sprintf("bad OSC address %q", e.Path)
}

// Node is one position in the address tree. The zero value is not
// usable; trees start from NewRoot.
//
// A node owns its children and the channel data accumulated at its
// address. The four channel sequences are parallel: types and values
// always have equal length, ranges and units may be shorter when not
// every channel declares them (positions are tracked by the caller).
type Node struct {
	description string
	fullPath    string
	access      Access
	children    map[string]*Node

	// Parallel channel sequences, all in insertion order.
	types  []osc.Value
	values []osc.Value
	ranges []Range
	units  []unit.Unit

	// hostInfo is only ever set on the root node.
	hostInfo *HostInfo
}

// NewRoot creates the tree root at "/" with NoAccess and the optional
// host descriptor. The root is created once at startup; all parameters
// are added to it before the tree is shared with readers.
func NewRoot(hostInfo *HostInfo) *Node {
	return &Node{
		fullPath: "/",
		access:   NoAccess,
		hostInfo: hostInfo,
	}
}

// newChild creates an empty intermediate node below parent.
func newChild(parentPath, segment string) *Node {
	return &Node{
		fullPath: joinPath(parentPath, segment),
		access:   NoAccess,
	}
}

// joinPath appends a segment to a parent path, keeping the invariant
// that a node's full path equals the '/'-joined segments from the root.
func joinPath(parentPath, segment string) string {
	if parentPath == "/" {
		return "/" + segment
	}
	return parentPath + "/" + segment
}

// Add inserts a parameter at its address, creating intermediate nodes
// as needed. At the terminal node the description, access and full path
// are overwritten (last write wins) and the value's type, the value,
// and the optional range and unit are appended as a new channel.
//
// Add never removes nodes or channels. The error return exists for
// structural symmetry with Get; insertion itself cannot fail.
func (n *Node) Add(p Parameter) error {
	segments := strings.Split(p.address, "/")
	if len(segments) > 0 && segments[0] == "" {
		// Drop the empty segment produced by the leading '/'.
		segments = segments[1:]
	}

	cur := n
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if cur.children == nil {
			cur.children = make(map[string]*Node)
		}
		child, ok := cur.children[segment]
		if !ok {
			child = newChild(cur.fullPath, segment)
			cur.children[segment] = child
		}
		cur = child
	}

	cur.description = p.description
	cur.access = p.access
	cur.fullPath = p.address
	cur.appendChannel(p.value, p.valueRange, p.valueUnit)
	return nil
}

// appendChannel appends one channel atomically, keeping the four
// sequences parallel: types and values always grow together, ranges and
// units only when declared.
func (n *Node) appendChannel(value osc.Value, r *Range, u unit.Unit) {
	n.types = append(n.types, value)
	n.values = append(n.values, value)
	if r != nil {
		n.ranges = append(n.ranges, *r)
	}
	if u != nil {
		n.units = append(n.units, u)
	}
}

// Get resolves a path to a node. A trailing '/' or an empty remainder
// resolves to the current node, so "/" returns the root. The returned
// node is a read-only borrow into the tree; it must not be retained
// past the tree's lifetime or mutated.
func (n *Node) Get(path string) (*Node, error) {
	segments := strings.Split(path, "/")
	if len(segments) > 0 {
		// The first segment is the current (root) node itself.
		segments = segments[1:]
	}

	cur := n
	for _, segment := range segments {
		if segment == "" {
			return cur, nil
		}
		child, ok := cur.children[segment]
		if !ok {
			return nil, &BadAddressError{Path: path}
		}
		cur = child
	}
	return cur, nil
}

// Description returns the node description.
func (n *Node) Description() string { return n.description }

// FullPath returns the root-relative address of the node.
func (n *Node) FullPath() string { return n.fullPath }

// Access returns the node's access rights.
func (n *Node) Access() Access { return n.access }

// HostInfo returns the host descriptor, non-nil only on a root that was
// created with one.
func (n *Node) HostInfo() *HostInfo { return n.hostInfo }

// ChildNames returns the names of the direct children in sorted order.
func (n *Node) ChildNames() []string {
	if len(n.children) == 0 {
		return nil
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node { return n.children[name] }

// Types returns the per-channel type sequence.
func (n *Node) Types() []osc.Value { return n.types }

// Values returns the per-channel value sequence, parallel to Types.
func (n *Node) Values() []osc.Value { return n.values }

// Ranges returns the declared ranges in channel order.
func (n *Node) Ranges() []Range { return n.ranges }

// Units returns the declared units in channel order.
func (n *Node) Units() []unit.Unit { return n.units }

// TypeString returns the TYPE tag string of the node's channels, empty
// when the node carries none.
func (n *Node) TypeString() string { return osc.EncodeTypes(n.types) }
