// Package planspec loads declarative plan descriptions and builds them into
// a plan.Plan.
//
// A description lists labeled nodes. Nodes name their input by label, so a
// subtree used by several parents is written once and referenced by label
// from each of them:
//
//	name: high_quantity
//	root: keys
//	nodes:
//	  - id: scan
//	    op: table_scan
//	    schema: tpch
//	    table: lineitem
//	    fields: [l_orderkey, l_quantity]
//	  - id: big
//	    op: filter
//	    source: scan
//	    condition:
//	      call: GREATER_THAN
//	      type: boolean
//	      operands:
//	        - {column: l_quantity, index: 1, type: integer}
//	        - {literal: "5", type: integer}
//	  - id: keys
//	    op: project
//	    source: big
//	    fields: [l_orderkey]
//	    exprs:
//	      - {column: l_orderkey, index: 0, type: integer}
//
// Descriptions may be written as YAML, JSON or CUE. CUE files are unified
// with the #Plan definition in schema.cue before decoding, which rejects
// unknown fields and operators with source positions.
//
// Literal values are always text. YAML scalars keep their spelling
// ("3.10" stays "3.10"), which matters because precision and scale are
// derived from the text.
package planspec
