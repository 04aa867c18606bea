package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// LineitemYAML describes scan(lineitem) -> filter(l_quantity > 5) ->
// project(l_orderkey) with labels scan, big and keys.
const LineitemYAML = `
name: high_quantity
root: keys
nodes:
  - id: scan
    op: table_scan
    schema: tpch
    table: lineitem
    fields: [l_orderkey, l_quantity]
  - id: big
    op: filter
    source: scan
    condition:
      call: GREATER_THAN
      type: boolean
      operands:
        - {column: l_quantity, index: 1, type: integer}
        - {literal: "5", type: integer}
  - id: keys
    op: project
    source: big
    fields: [l_orderkey]
    exprs:
      - {column: l_orderkey, index: 0, type: integer}
`

// LineitemDocument is the serialized form of LineitemYAML.
const LineitemDocument = `{"relsNode":[` +
	`{"fieldNames":["l_orderkey","l_quantity"],"id":"0","input":[],"name":"LogicalTableScan","table":{"tpch":"lineitem"}},` +
	`{"condition":{"op":">=","operands":[{"input":"1"},{"literal":5,"precision":1,"scale":0,"target_type":"Integer","type":"DECIMAL","type_precision":10,"type_scale":0}],"type":{"nullable":true,"type":"BOOLEAN"}},"id":"1","relOp":"LogicalFilter"},` +
	`{"exprs":[{"input":"0"}],"fields":["l_orderkey"],"id":"2","relOp":"LogicalProject"}]}`

// WriteFile writes content to dir/name, creating parent directories, and
// returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
