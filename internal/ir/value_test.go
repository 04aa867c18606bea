package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIRValueSealed(t *testing.T) {
	var _ IRValue = IRNull{}
	var _ IRValue = IRString("test")
	var _ IRValue = IRInt(42)
	var _ IRValue = IRBool(true)
	var _ IRValue = IRArray{IRString("a"), IRInt(1)}
	var _ IRValue = IRObject{"key": IRString("value")}
}

func TestIRObjectSortedKeys(t *testing.T) {
	obj := IRObject{
		"relOp":  IRString("LogicalProject"),
		"id":     IRString("2"),
		"fields": IRArray{},
		"exprs":  IRArray{},
	}

	assert.Equal(t, []string{"exprs", "fields", "id", "relOp"}, obj.SortedKeys())
}

func TestIRObjectSortedKeysCase(t *testing.T) {
	obj := IRObject{
		"a":  IRInt(1),
		"A":  IRInt(2),
		"aA": IRInt(3),
		"AA": IRInt(4),
	}

	// 'A' = 65 < 'a' = 97
	assert.Equal(t, []string{"A", "AA", "a", "aA"}, obj.SortedKeys())
}

func TestIRObjectEmpty(t *testing.T) {
	assert.Empty(t, IRObject{}.SortedKeys())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, IRArray{IRString("a"), IRString("b")}, Strings([]string{"a", "b"}))

	empty := Strings(nil)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestCompareKeysRFC8785(t *testing.T) {
	assert.Equal(t, 0, compareKeysRFC8785("id", "id"))
	assert.Equal(t, -1, compareKeysRFC8785("id", "input"))
	assert.Equal(t, 1, compareKeysRFC8785("type_scale", "type"))
	assert.Equal(t, -1, compareKeysRFC8785("\U0001F600", "\uE000"))
}
