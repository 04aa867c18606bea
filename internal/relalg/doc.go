// Package relalg serializes a plan DAG into a single RelAlg JSON document.
//
// The document has one top-level key, "relsNode", holding the encoded nodes
// in emission order:
//
//	{"relsNode": [{"id": "0", ...}, {"id": "1", ...}, ...]}
//
// Emission order is a post-order walk over source edges with an explicit
// stack. It has three properties the engine relies on:
//   - every node appears after all of its sources
//   - every distinct node appears once, however many parents share it
//   - ids are the dense sequence "0", "1", ... in emission order, independent
//     of node labels
//
// Keys within each object are written in sorted order (see ir.MarshalCanonical),
// so a plan always serializes to the same bytes.
//
// Serialization is synchronous, does no I/O and keeps no state between
// calls. A failure while encoding any node aborts the whole document.
package relalg
