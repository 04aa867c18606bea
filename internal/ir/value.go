package ir

import (
	"slices"
	"unicode/utf16"
)

// IRValue is a sealed interface representing the JSON values an encoder may
// produce. Only IRNull, IRString, IRInt, IRBool, IRArray and IRObject
// implement it. There is no float variant; decimal literals are carried as
// scaled integers.
type IRValue interface {
	irValue() // Sealed - only these types implement it
}

// IRNull represents a JSON null. MarshalCanonical rejects it; it exists so a
// decoded document can still be represented.
type IRNull struct{}

func (IRNull) irValue() {}

// IRString represents a string value.
type IRString string

func (IRString) irValue() {}

// IRInt represents an integer value. Always int64.
type IRInt int64

func (IRInt) irValue() {}

// IRBool represents a boolean value.
type IRBool bool

func (IRBool) irValue() {}

// IRArray represents an ordered array of values.
type IRArray []IRValue

func (IRArray) irValue() {}

// IRObject represents a JSON object. Iteration order of the map is
// irrelevant; use SortedKeys for deterministic traversal.
type IRObject map[string]IRValue

func (IRObject) irValue() {}

// Strings converts a string slice to an IRArray of IRString, preserving order.
// A nil or empty slice yields an empty (non-nil) array so it encodes as [].
func Strings(vals []string) IRArray {
	arr := make(IRArray, len(vals))
	for i, v := range vals {
		arr[i] = IRString(v)
	}
	return arr
}

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
// For the ASCII keys of the RelAlg dialect this equals byte order.
func (obj IRObject) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// compareKeysRFC8785 compares strings by UTF-16 code units.
// Go's native string comparison is UTF-8 byte order, which differs for
// characters outside the BMP.
func compareKeysRFC8785(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}
