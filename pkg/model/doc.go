// Package model implements the OSCQuery namespace data model.
//
// # Address Tree
//
// The namespace is a tree of nodes indexed by OSC address. An address is
// a '/'-delimited absolute path ("/group/test"); each node holds a
// description, its full path, access rights, sorted child nodes, and the
// channel data accumulated at that address. The root node optionally
// carries the HOST_INFO descriptor.
//
//	root "/"                      HOST_INFO
//	├── group      "/group"
//	│   ├── test   "/group/test"  TYPE "f"  VALUE [1]  RANGE  UNIT
//	│   └── test2  "/group/test2" TYPE "f"  VALUE [1]
//	└── status     "/status"      TYPE "s"  VALUE ["ok"]
//
// # Channels
//
// An address may carry multiple channels: parallel sequences of types,
// values, ranges and units in insertion order. Adding a parameter at an
// existing address never overwrites channel data, it appends a channel;
// description and access are overwritten (last write wins). Nodes and
// channels are never removed.
//
// # Build Then Serve
//
// The tree carries no internal synchronization. It is built single
// threaded (NewRoot plus Add calls) and then shared read-only among
// concurrent readers performing Get and serialization. Callers that need
// live updates after publication must replace the tree wholesale or add
// their own locking.
//
// # Serialization
//
// Node marshals to the OSCQuery JSON object shape with fixed key order
// (DESCRIPTION, FULL_PATH, ACCESS, CONTENTS, TYPE, VALUE, RANGE, UNIT,
// HOST_INFO) and children sorted by name, so the same tree always yields
// byte-identical output.
package model
