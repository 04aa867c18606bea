package tags

// Kind enumerates the type names the encoder distinguishes.
//
// The 32-bit integer arrives spelled three ways. All three share the Integer
// normalization, but only "integer" literals take the integer constant
// encoding.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindVarchar
	KindBigint
	KindInteger
	KindInt
	KindDouble
	KindBool
)

var kindNames = map[string]Kind{
	"varchar": KindVarchar,
	"bigint":  KindBigint,
	"integer": KindInteger,
	"int":     KindInt,
	"Int":     KindInt,
	"double":  KindDouble,
	"bool":    KindBool,
}

// Type is a parsed type name. Name is always the spelling it was parsed from.
type Type struct {
	Kind Kind
	Name string
}

// ParseType classifies a type name. Matching is case-sensitive.
func ParseType(name string) Type {
	return Type{Kind: kindNames[name], Name: name}
}

// Normalized returns the engine-side name of the type.
//
//	int, integer, Int -> Integer
//	double            -> decimal
//	anything else     -> unchanged
func (t Type) Normalized() string {
	switch t.Kind {
	case KindInteger, KindInt:
		return "Integer"
	case KindDouble:
		return "decimal"
	default:
		return t.Name
	}
}

// Precision returns the fixed-point precision of the type, or UnknownPrecision.
//
//	int, integer, Int -> 10
//	double            -> 15
func (t Type) Precision() int {
	switch t.Kind {
	case KindInteger, KindInt:
		return 10
	case KindDouble:
		return 15
	default:
		return UnknownPrecision
	}
}

// UnknownPrecision is the precision reported for types without a table entry.
// Note that bigint has none.
const UnknownPrecision = -1

// NormalizeType maps a planner type name to its engine-side name.
func NormalizeType(name string) string {
	return ParseType(name).Normalized()
}

// IntegerPrecision returns the fixed-point precision for a type name, or -1.
func IntegerPrecision(name string) int {
	return ParseType(name).Precision()
}
