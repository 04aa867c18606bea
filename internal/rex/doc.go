// Package rex provides the row expressions carried by plan nodes and their
// RelAlg JSON encoding.
//
// RowExpr is a sealed interface using the marker method pattern. Only
// Constant, Variable and Call implement it:
//
//	switch e := expr.(type) {
//	case *Constant:
//	    // literal
//	case *Variable:
//	    // positional column reference
//	case *Call:
//	    // operator application, operands encoded recursively
//	}
//
// Expressions are immutable once constructed and may be shared between
// several parents. Encoding is a pure function of the expression, so
// encoding the same expression twice yields the same object.
package rex
