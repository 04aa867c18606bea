// Package plan provides the relational plan DAG handed to the serializer.
//
// A Plan is an append-only arena of nodes addressed by Handle. A node names
// its sources by handle, and a source must already exist when its parent is
// added, so every Plan is acyclic by construction. Sharing a subtree means
// passing the same handle to several parents; two structurally equal nodes
// added separately are two distinct nodes.
//
// Node is a sealed interface. The node family is closed:
//   - TableScan: leaf, reads a table
//   - Filter: one source, keeps rows matching a predicate
//   - Project: one source, computes named output expressions
//
// Nodes are immutable once added. A finished Plan may be read and serialized
// from several goroutines; building one is not safe for concurrent use.
package plan
