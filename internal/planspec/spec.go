package planspec

import (
	"errors"
	"fmt"

	"github.com/roach88/relalg/internal/rex"
)

// Node operators accepted in descriptions.
const (
	OpTableScan = "table_scan"
	OpFilter    = "filter"
	OpProject   = "project"
)

var (
	// ErrUnknownNode is returned when a node or root refers to a label that
	// is not declared.
	ErrUnknownNode = errors.New("unknown node")

	// ErrDuplicateNode is returned when two nodes share a label.
	ErrDuplicateNode = errors.New("duplicate node label")

	// ErrCycle is returned when following sources leads back to a node.
	ErrCycle = errors.New("plan contains a cycle")

	// ErrInvalidNode is returned for a node or expression that is missing
	// required fields or mixes fields of different kinds.
	ErrInvalidNode = errors.New("invalid node")
)

// Spec is a plan description.
type Spec struct {
	// Name identifies the plan in logs and the document store.
	Name string `yaml:"name" json:"name,omitempty"`

	// Root is the label of the node to serialize. Empty means the last
	// declared node.
	Root string `yaml:"root,omitempty" json:"root,omitempty"`

	// Nodes lists the plan nodes in any order.
	Nodes []NodeSpec `yaml:"nodes" json:"nodes"`
}

// NodeSpec describes one plan node. Which fields apply depends on Op:
//
//	table_scan: table, schema, fields
//	filter:     source, condition
//	project:    source, fields (output names), exprs
type NodeSpec struct {
	ID        string     `yaml:"id,omitempty" json:"id,omitempty"`
	Op        string     `yaml:"op" json:"op"`
	Table     string     `yaml:"table,omitempty" json:"table,omitempty"`
	Schema    string     `yaml:"schema,omitempty" json:"schema,omitempty"`
	Fields    []string   `yaml:"fields,omitempty" json:"fields,omitempty"`
	Source    string     `yaml:"source,omitempty" json:"source,omitempty"`
	Condition *ExprSpec  `yaml:"condition,omitempty" json:"condition,omitempty"`
	Exprs     []ExprSpec `yaml:"exprs,omitempty" json:"exprs,omitempty"`
}

// ExprSpec describes a row expression. Exactly one of Literal, Index or
// Call selects the kind:
//
//	literal + type          -> rex.Constant
//	index [+ column] + type -> rex.Variable
//	call + type + operands  -> rex.Call (type is the result type)
type ExprSpec struct {
	Type     string     `yaml:"type" json:"type"`
	Literal  *string    `yaml:"literal,omitempty" json:"literal,omitempty"`
	Column   string     `yaml:"column,omitempty" json:"column,omitempty"`
	Index    *int       `yaml:"index,omitempty" json:"index,omitempty"`
	Call     string     `yaml:"call,omitempty" json:"call,omitempty"`
	Operands []ExprSpec `yaml:"operands,omitempty" json:"operands,omitempty"`
}

// Expr converts the description to a row expression.
func (e ExprSpec) Expr() (rex.RowExpr, error) {
	kinds := 0
	if e.Literal != nil {
		kinds++
	}
	if e.Index != nil {
		kinds++
	}
	if e.Call != "" {
		kinds++
	}
	if kinds != 1 {
		return nil, fmt.Errorf("expression must set exactly one of literal, index, call: %w", ErrInvalidNode)
	}

	switch {
	case e.Literal != nil:
		return rex.NewConstant(*e.Literal, e.Type), nil
	case e.Index != nil:
		if *e.Index < 0 {
			return nil, fmt.Errorf("column %q: negative index %d: %w", e.Column, *e.Index, ErrInvalidNode)
		}
		return rex.NewVariable(e.Column, e.Type, *e.Index), nil
	default:
		operands := make([]rex.RowExpr, len(e.Operands))
		for i, o := range e.Operands {
			expr, err := o.Expr()
			if err != nil {
				return nil, fmt.Errorf("%s operand %d: %w", e.Call, i, err)
			}
			operands[i] = expr
		}
		return rex.NewCall(e.Call, e.Type, operands...), nil
	}
}
