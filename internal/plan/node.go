package plan

import (
	"fmt"

	"github.com/roach88/relalg/internal/ir"
	"github.com/roach88/relalg/internal/rex"
)

// Operator names written into the document.
const (
	OpTableScan = "LogicalTableScan"
	OpFilter    = "LogicalFilter"
	OpProject   = "LogicalProject"
)

// Node is a relational operator in a Plan.
//
// This is a sealed interface - only types in this package implement it.
type Node interface {
	// Label is the opaque name given to the node when it was built. It is
	// unrelated to the identifier assigned during serialization.
	Label() string

	// Op returns the RelAlg operator name.
	Op() string

	// Sources returns the handles of the node's inputs in order.
	Sources() []Handle

	// Exprs returns the row expressions the node encodes, in order.
	Exprs() []rex.RowExpr

	// Encode produces the RelAlg JSON object of the node under the given
	// document identifier.
	Encode(assignedID string) (ir.IRObject, error)

	planNode() // Marker method - seals interface to this package
}

// TableScan reads the listed fields of a table. It has no sources.
type TableScan struct {
	label  string
	table  string
	schema string
	fields []string
}

func (*TableScan) planNode() {}

func (n *TableScan) Label() string { return n.label }

func (n *TableScan) Op() string { return OpTableScan }

// Sources returns nil; a scan is a leaf.
func (n *TableScan) Sources() []Handle { return nil }

func (n *TableScan) Exprs() []rex.RowExpr { return nil }

// Table returns the table name.
func (n *TableScan) Table() string { return n.table }

// Schema returns the schema name.
func (n *TableScan) Schema() string { return n.schema }

// Fields returns a copy of the scanned field names.
func (n *TableScan) Fields() []string { return append([]string(nil), n.fields...) }

// Encode produces:
//
//	{"id": ..., "name": "LogicalTableScan", "fieldNames": [...], "table": {<schema>: <table>}, "input": []}
//
// The table object is keyed by the schema name with the table name as value.
// The engine reads it that way.
func (n *TableScan) Encode(assignedID string) (ir.IRObject, error) {
	return ir.IRObject{
		"id":         ir.IRString(assignedID),
		"name":       ir.IRString(OpTableScan),
		"fieldNames": ir.Strings(n.fields),
		"table":      ir.IRObject{n.schema: ir.IRString(n.table)},
		"input":      ir.IRArray{},
	}, nil
}

// Filter keeps the rows of its source for which the predicate holds.
type Filter struct {
	label     string
	predicate rex.RowExpr
	source    Handle
}

func (*Filter) planNode() {}

func (n *Filter) Label() string { return n.label }

func (n *Filter) Op() string { return OpFilter }

func (n *Filter) Sources() []Handle { return []Handle{n.source} }

func (n *Filter) Exprs() []rex.RowExpr { return []rex.RowExpr{n.predicate} }

// Predicate returns the filter condition.
func (n *Filter) Predicate() rex.RowExpr { return n.predicate }

// Encode produces {"id": ..., "relOp": "LogicalFilter", "condition": <predicate>}.
func (n *Filter) Encode(assignedID string) (ir.IRObject, error) {
	condition, err := n.predicate.Encode()
	if err != nil {
		return nil, fmt.Errorf("%s %q: condition: %w", OpFilter, n.label, err)
	}
	return ir.IRObject{
		"id":        ir.IRString(assignedID),
		"relOp":     ir.IRString(OpFilter),
		"condition": condition,
	}, nil
}

// Project computes one output field per expression over its source rows.
type Project struct {
	label  string
	names  []string
	exprs  []rex.RowExpr
	source Handle
}

func (*Project) planNode() {}

func (n *Project) Label() string { return n.label }

func (n *Project) Op() string { return OpProject }

func (n *Project) Sources() []Handle { return []Handle{n.source} }

// Names returns a copy of the output field names.
func (n *Project) Names() []string { return append([]string(nil), n.names...) }

// Exprs returns a copy of the output expressions, index-aligned with Names.
func (n *Project) Exprs() []rex.RowExpr { return append([]rex.RowExpr(nil), n.exprs...) }

// Encode produces {"id": ..., "relOp": "LogicalProject", "fields": [...], "exprs": [...]}.
// fields[i] names the value of exprs[i].
func (n *Project) Encode(assignedID string) (ir.IRObject, error) {
	exprs := make(ir.IRArray, len(n.exprs))
	for i, e := range n.exprs {
		enc, err := e.Encode()
		if err != nil {
			return nil, fmt.Errorf("%s %q: expr %d (%s): %w", OpProject, n.label, i, n.names[i], err)
		}
		exprs[i] = enc
	}
	return ir.IRObject{
		"id":     ir.IRString(assignedID),
		"relOp":  ir.IRString(OpProject),
		"fields": ir.Strings(n.names),
		"exprs":  exprs,
	}, nil
}
