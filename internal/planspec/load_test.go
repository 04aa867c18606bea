package planspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relalg/internal/relalg"
	"github.com/roach88/relalg/internal/testutil"
)

const lineitemJSON = `{
  "name": "high_quantity",
  "root": "keys",
  "nodes": [
    {"id": "scan", "op": "table_scan", "schema": "tpch", "table": "lineitem", "fields": ["l_orderkey", "l_quantity"]},
    {"id": "big", "op": "filter", "source": "scan", "condition": {
      "call": "GREATER_THAN", "type": "boolean", "operands": [
        {"column": "l_quantity", "index": 1, "type": "integer"},
        {"literal": "5", "type": "integer"}
      ]}},
    {"id": "keys", "op": "project", "source": "big", "fields": ["l_orderkey"],
     "exprs": [{"column": "l_orderkey", "index": 0, "type": "integer"}]}
  ]
}`

const lineitemCUE = `
name: "high_quantity"
root: "keys"
nodes: [
	{id: "scan", op: "table_scan", schema: "tpch", table: "lineitem", fields: ["l_orderkey", "l_quantity"]},
	{
		id:     "big"
		op:     "filter"
		source: "scan"
		condition: {
			call: "GREATER_THAN"
			type: "boolean"
			operands: [
				{column: "l_quantity", index: 1, type: "integer"},
				{literal: "5", type: "integer"},
			]
		}
	},
	{
		id:     "keys"
		op:     "project"
		source: "big"
		fields: ["l_orderkey"]
		exprs: [{column: "l_orderkey", index: 0, type: "integer"}]
	},
]
`

func serializeSpec(t *testing.T, spec *Spec) string {
	t.Helper()

	p, root, err := spec.Build()
	require.NoError(t, err)

	doc, err := relalg.Serialize(p, root)
	require.NoError(t, err)
	return doc
}

func TestParseFormatsAgree(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", testutil.LineitemYAML, FormatYAML},
		{"json", lineitemJSON, FormatJSON},
		{"cue", lineitemCUE, FormatCUE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "high_quantity", spec.Name)
			assert.Equal(t, "keys", spec.Root)
			require.Len(t, spec.Nodes, 3)
			assert.Equal(t, testutil.LineitemDocument, serializeSpec(t, spec))
		})
	}
}

func TestParseYAMLKeepsLiteralText(t *testing.T) {
	data := `
nodes:
  - id: scan
    op: table_scan
    table: t
  - id: f
    op: filter
    source: scan
    condition: {literal: 3.10, type: double}
`
	spec, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)
	require.NotNil(t, spec.Nodes[1].Condition.Literal)
	assert.Equal(t, "3.10", *spec.Nodes[1].Condition.Literal)
}

func TestParseNormalizesToNFC(t *testing.T) {
	data := "nodes:\n" +
		"  - {id: scan, op: table_scan, schema: \"cafe\u0301\", table: t, fields: [\"nai\u0308ve\"]}\n" +
		"  - {id: f, op: filter, source: scan, condition: {literal: \"e\u0301\", type: varchar}}\n"

	spec, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", spec.Nodes[0].Schema)
	assert.Equal(t, []string{"na\u00efve"}, spec.Nodes[0].Fields)
	assert.Equal(t, "\u00e9", *spec.Nodes[1].Condition.Literal)

	p, root, err := spec.Build()
	require.NoError(t, err)
	doc, err := relalg.Serialize(p, root)
	require.NoError(t, err)
	assert.Contains(t, doc, "\"literal\":\"\u00e9\",\"precision\":2")
	assert.Contains(t, doc, "\"type_precision\":2")
	assert.Contains(t, doc, "{\"caf\u00e9\":\"t\"}")
}

func TestParseYAMLRejectsUnknownField(t *testing.T) {
	data := `
nodes:
  - id: scan
    op: table_scan
    tabel: lineitem
`
	_, err := Parse([]byte(data), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tabel")
}

func TestParseYAMLEmpty(t *testing.T) {
	_, err := Parse(nil, FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidNode)
}

func TestParseCUERejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown field", `nodes: [{op: "table_scan", tabel: "t"}]`},
		{"unknown op", `nodes: [{op: "join"}]`},
		{"no nodes", `nodes: []`},
		{"negative index", `nodes: [{op: "filter", source: "s", condition: {index: -1, type: "integer"}}]`},
		{"numeric literal", `nodes: [{op: "filter", source: "s", condition: {literal: 5, type: "integer"}}]`},
		{"syntax", `nodes: [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatCUE)
			assert.Error(t, err)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"plan.yaml", FormatYAML},
		{"plan.YML", FormatYAML},
		{"dir/plan.json", FormatJSON},
		{"plan.cue", FormatCUE},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("plan.txt")
	assert.Error(t, err)
}

func TestLoadFileDefaultsName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nightly.yaml")
	data := "nodes:\n  - {id: scan, op: table_scan, table: t}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	spec, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nightly", spec.Name)
}

func TestLoadFileCUE(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineitem.cue")
	require.NoError(t, os.WriteFile(path, []byte(lineitemCUE), 0o644))

	spec, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "high_quantity", spec.Name)
	assert.Equal(t, testutil.LineitemDocument, serializeSpec(t, spec))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
