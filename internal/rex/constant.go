package rex

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/relalg/internal/ir"
	"github.com/roach88/relalg/internal/tags"
)

// NoScale is the scale written for literals without a fixed-point scale
// (strings and booleans). It is the minimum 32-bit integer.
const NoScale = math.MinInt32

// ErrMissingDecimalPoint is returned when a double literal has no '.'.
// Precision and scale are derived from the position of the point, so such a
// literal cannot be encoded.
var ErrMissingDecimalPoint = errors.New("double literal has no decimal point")

// Constant is a typed literal. The value is kept in its textual form; the
// numeric encoding is derived from the text when the constant is encoded.
type Constant struct {
	value string
	typ   string
}

// NewConstant creates a literal of the given type name.
func NewConstant(value, typ string) *Constant {
	return &Constant{value: value, typ: typ}
}

func (*Constant) rowExpr() {}

// Value returns the literal text.
func (c *Constant) Value() string { return c.value }

// Type returns the literal type name.
func (c *Constant) Type() string { return c.typ }

// Encode produces the flat literal object with the keys literal, type,
// target_type, scale, precision, type_scale and type_precision.
//
// Constants of a type outside varchar, bigint, integer, double and bool
// encode to an empty object rather than an error; see Encodable.
func (c *Constant) Encode() (ir.IRObject, error) {
	t := tags.ParseType(c.typ)
	switch t.Kind {
	case tags.KindVarchar:
		return literalObject(ir.IRString(c.value), "CHAR", "CHAR",
			NoScale, len(c.value), NoScale, len(c.value)), nil
	case tags.KindBigint, tags.KindInteger:
		n, err := strconv.ParseInt(c.value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("encode %s literal %q: %w", c.typ, c.value, err)
		}
		return literalObject(ir.IRInt(n), "DECIMAL", t.Normalized(),
			0, len(c.value), 0, t.Precision()), nil
	case tags.KindDouble:
		return c.encodeDecimal(t)
	case tags.KindBool:
		return literalObject(ir.IRString(c.value), "BOOLEAN", "BOOLEAN",
			NoScale, 1, NoScale, 1), nil
	default:
		return ir.IRObject{}, nil
	}
}

// Encodable reports whether the constant's type has a literal encoding.
func (c *Constant) Encodable() bool {
	switch tags.ParseType(c.typ).Kind {
	case tags.KindVarchar, tags.KindBigint, tags.KindInteger, tags.KindDouble, tags.KindBool:
		return true
	default:
		return false
	}
}

// encodeDecimal writes a double literal as a fixed-point decimal.
//
// precision is the length of the text minus the point, scale the number of
// characters after the point, and the literal the text with the point
// removed. "3.14" becomes 314 with precision 3 and scale 2. A leading sign
// counts towards precision ("-3.14" has precision 4); exponent notation is
// rejected by the integer parse.
func (c *Constant) encodeDecimal(t tags.Type) (ir.IRObject, error) {
	dot := strings.IndexByte(c.value, '.')
	if dot < 0 {
		return nil, fmt.Errorf("encode %s literal %q: %w", c.typ, c.value, ErrMissingDecimalPoint)
	}

	precision := len(c.value) - 1
	scale := precision - dot
	digits := c.value[:dot] + c.value[dot+1:]

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("encode %s literal %q: %w", c.typ, c.value, err)
	}

	return literalObject(ir.IRInt(n), "DECIMAL", t.Normalized(),
		scale, precision, scale, precision), nil
}

func literalObject(literal ir.IRValue, typ, targetType string, scale, precision, typeScale, typePrecision int) ir.IRObject {
	return ir.IRObject{
		"literal":        literal,
		"type":           ir.IRString(typ),
		"target_type":    ir.IRString(targetType),
		"scale":          ir.IRInt(scale),
		"precision":      ir.IRInt(precision),
		"type_scale":     ir.IRInt(typeScale),
		"type_precision": ir.IRInt(typePrecision),
	}
}

func (c *Constant) String() string {
	if t := tags.ParseType(c.typ); t.Kind == tags.KindVarchar {
		return strconv.Quote(c.value)
	}
	return c.value
}
