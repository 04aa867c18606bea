package plan

import (
	"errors"
	"fmt"

	"github.com/roach88/relalg/internal/rex"
)

var (
	// ErrInvalidSource is returned when a source handle does not name a node
	// already in the plan.
	ErrInvalidSource = errors.New("invalid source handle")

	// ErrFieldCountMismatch is returned when a Project has a different number
	// of field names and expressions.
	ErrFieldCountMismatch = errors.New("field names and expressions differ in length")

	// ErrNilExpression is returned when a node is given a nil expression.
	ErrNilExpression = errors.New("nil expression")
)

// Handle addresses a node within its Plan. Handles are dense and assigned in
// insertion order starting at 0.
type Handle int

// NoHandle is the zero-value-safe "no node" handle.
const NoHandle Handle = -1

// Plan is an arena holding every node of a plan DAG.
type Plan struct {
	nodes []Node
}

// New creates an empty plan.
func New() *Plan {
	return &Plan{}
}

// Len returns the number of nodes in the arena.
func (p *Plan) Len() int {
	return len(p.nodes)
}

// Valid reports whether h names a node of this plan.
func (p *Plan) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(p.nodes)
}

// Node returns the node addressed by h.
func (p *Plan) Node(h Handle) (Node, error) {
	if !p.Valid(h) {
		return nil, fmt.Errorf("node %d: %w", h, ErrInvalidSource)
	}
	return p.nodes[h], nil
}

func (p *Plan) add(n Node) Handle {
	p.nodes = append(p.nodes, n)
	return Handle(len(p.nodes) - 1)
}

// TableScan adds a leaf node reading fields from schema.table.
func (p *Plan) TableScan(label, table, schema string, fields []string) Handle {
	return p.add(&TableScan{
		label:  label,
		table:  table,
		schema: schema,
		fields: append([]string(nil), fields...),
	})
}

// Filter adds a node keeping the rows of source for which predicate holds.
func (p *Plan) Filter(label string, predicate rex.RowExpr, source Handle) (Handle, error) {
	if !p.Valid(source) {
		return NoHandle, fmt.Errorf("filter %q: source %d: %w", label, source, ErrInvalidSource)
	}
	if predicate == nil {
		return NoHandle, fmt.Errorf("filter %q: predicate: %w", label, ErrNilExpression)
	}
	return p.add(&Filter{
		label:     label,
		predicate: predicate,
		source:    source,
	}), nil
}

// Project adds a node computing exprs[i] as output field names[i] over the
// rows of source. names and exprs must have equal length.
func (p *Plan) Project(label string, names []string, exprs []rex.RowExpr, source Handle) (Handle, error) {
	if !p.Valid(source) {
		return NoHandle, fmt.Errorf("project %q: source %d: %w", label, source, ErrInvalidSource)
	}
	if len(names) != len(exprs) {
		return NoHandle, fmt.Errorf("project %q: %d names, %d exprs: %w",
			label, len(names), len(exprs), ErrFieldCountMismatch)
	}
	for i, e := range exprs {
		if e == nil {
			return NoHandle, fmt.Errorf("project %q: expr %d: %w", label, i, ErrNilExpression)
		}
	}
	return p.add(&Project{
		label:  label,
		names:  append([]string(nil), names...),
		exprs:  append([]rex.RowExpr(nil), exprs...),
		source: source,
	}), nil
}

// Sources returns the source handles of h, or nil if h is not a node of p.
func (p *Plan) Sources(h Handle) []Handle {
	if !p.Valid(h) {
		return nil
	}
	return p.nodes[h].Sources()
}
