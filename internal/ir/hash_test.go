package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanHashDeterminism(t *testing.T) {
	doc := IRObject{"relsNode": IRArray{IRObject{"id": IRString("0")}}}

	h1, err := PlanHash(doc)
	require.NoError(t, err)
	h2, err := PlanHash(doc)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64, "SHA-256 hex is 64 characters")
}

func TestPlanHashMatchesHashDocument(t *testing.T) {
	doc := IRObject{"relsNode": IRArray{}}

	canonical, err := MarshalCanonical(doc)
	require.NoError(t, err)

	h, err := PlanHash(doc)
	require.NoError(t, err)
	assert.Equal(t, HashDocument(canonical), h)
}

func TestPlanHashChangesWithContent(t *testing.T) {
	a, err := PlanHash(IRObject{"relsNode": IRArray{IRObject{"id": IRString("0")}}})
	require.NoError(t, err)
	b, err := PlanHash(IRObject{"relsNode": IRArray{IRObject{"id": IRString("1")}}})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashWithDomainNullSeparator(t *testing.T) {
	// "ab" + 0x00 + "c" must differ from "a" + 0x00 + "bc"
	assert.NotEqual(t, hashWithDomain("ab", []byte("c")), hashWithDomain("a", []byte("bc")))
}

func TestPlanHashErrorHandling(t *testing.T) {
	_, err := PlanHash(IRObject{"bad": IRNull{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PlanHash")
}
