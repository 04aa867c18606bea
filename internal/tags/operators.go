package tags

// OpCode enumerates the operator names with an engine-side rename.
type OpCode int

const (
	OpUnrecognized OpCode = iota
	OpEqual
	OpGreaterThan
	OpLessThan
	OpModulus
	OpDivide
)

var opNames = map[string]OpCode{
	"EQUAL":        OpEqual,
	"GREATER_THAN": OpGreaterThan,
	"LESS_THAN":    OpLessThan,
	"MODULUS":      OpModulus,
	"DIVIDE":       OpDivide,
}

// opSymbols holds the engine spelling of each recognized operator.
//
// GREATER_THAN maps to ">=" because that is what the engine has always been
// sent. Changing it to ">" changes query results for existing callers, so it
// is pinned by TestNormalizeOperatorGreaterThan until the consumer confirms
// which comparison it expects.
var opSymbols = map[OpCode]string{
	OpEqual:       "=",
	OpGreaterThan: ">=",
	OpLessThan:    "<",
	OpModulus:     "MOD",
	OpDivide:      "/",
}

// Operator is a parsed operator name. Name is the original spelling.
type Operator struct {
	Code OpCode
	Name string
}

// ParseOperator classifies an operator name. Matching is case-sensitive.
func ParseOperator(name string) Operator {
	return Operator{Code: opNames[name], Name: name}
}

// Symbol returns the engine spelling of the operator. Unrecognized operators
// are returned unchanged.
func (o Operator) Symbol() string {
	if sym, ok := opSymbols[o.Code]; ok {
		return sym
	}
	return o.Name
}

// NormalizeOperator maps a planner operator name to the engine spelling.
func NormalizeOperator(name string) string {
	return ParseOperator(name).Symbol()
}
