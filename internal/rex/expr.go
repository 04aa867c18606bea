package rex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/relalg/internal/ir"
	"github.com/roach88/relalg/internal/tags"
)

// RowExpr is a scalar expression evaluated against an input row.
//
// This is a sealed interface - only types in this package implement it.
type RowExpr interface {
	// Encode produces the RelAlg JSON object for the expression.
	Encode() (ir.IRObject, error)

	rowExpr() // Marker method - seals interface to this package
}

// Walk calls fn for e and then, depth first, for each operand below it.
func Walk(e RowExpr, fn func(RowExpr)) {
	if e == nil {
		return
	}
	fn(e)
	if call, ok := e.(*Call); ok {
		for _, operand := range call.operands {
			Walk(operand, fn)
		}
	}
}

// Variable references an input column by position. Name and Type describe
// the column for diagnostics; only the index is encoded because the engine
// resolves the type from the input schema.
type Variable struct {
	name  string
	typ   string
	index int
}

// NewVariable creates a reference to the input column at index.
func NewVariable(name, typ string, index int) *Variable {
	return &Variable{name: name, typ: typ, index: index}
}

func (*Variable) rowExpr() {}

// Name returns the column name.
func (v *Variable) Name() string { return v.name }

// Type returns the column type name.
func (v *Variable) Type() string { return v.typ }

// Index returns the column position.
func (v *Variable) Index() int { return v.index }

// Encode returns {"input": "<index>"}. The index is written as a string.
func (v *Variable) Encode() (ir.IRObject, error) {
	return ir.IRObject{
		"input": ir.IRString(strconv.Itoa(v.index)),
	}, nil
}

func (v *Variable) String() string {
	return "$" + strconv.Itoa(v.index)
}

// Call applies an operator to an ordered list of operands.
type Call struct {
	op         string
	resultType string
	operands   []RowExpr
}

// NewCall creates an operator application. The operand slice is copied;
// the operands themselves are shared.
func NewCall(op, resultType string, operands ...RowExpr) *Call {
	return &Call{
		op:         op,
		resultType: resultType,
		operands:   append([]RowExpr(nil), operands...),
	}
}

func (*Call) rowExpr() {}

// Operator returns the operator name as given by the planner.
func (c *Call) Operator() string { return c.op }

// ResultType returns the declared result type name.
func (c *Call) ResultType() string { return c.resultType }

// Operands returns a copy of the operand list.
func (c *Call) Operands() []RowExpr {
	return append([]RowExpr(nil), c.operands...)
}

// Encode produces:
//
//	{"op": <engine operator>, "operands": [...], "type": {"type": <RESULT TYPE>, "nullable": true}}
//
// nullable is always true; this layer does no nullability inference.
func (c *Call) Encode() (ir.IRObject, error) {
	operands := make(ir.IRArray, len(c.operands))
	for i, operand := range c.operands {
		if operand == nil {
			return nil, fmt.Errorf("encode %s: operand %d is nil", c.op, i)
		}
		enc, err := operand.Encode()
		if err != nil {
			return nil, fmt.Errorf("encode %s: operand %d: %w", c.op, i, err)
		}
		operands[i] = enc
	}

	return ir.IRObject{
		"op":       ir.IRString(tags.NormalizeOperator(c.op)),
		"operands": operands,
		"type": ir.IRObject{
			"type":     ir.IRString(strings.ToUpper(c.resultType)),
			"nullable": ir.IRBool(true),
		},
	}, nil
}

func (c *Call) String() string {
	parts := make([]string, len(c.operands))
	for i, operand := range c.operands {
		parts[i] = fmt.Sprint(operand)
	}
	return c.op + "(" + strings.Join(parts, ", ") + ")"
}
