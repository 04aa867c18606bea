package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relalg/internal/testutil"
)

// createScenarioDir writes a passing scenario for testutil.LineitemYAML and returns
// the scenarios directory.
func createScenarioDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "plans/lineitem.yaml", testutil.LineitemYAML)
	testutil.WriteFile(t, dir, "lineitem.yaml", `
name: lineitem
description: "scan, filter, project"
plan: plans/lineitem.yaml
expect:
  nodes: 3
  order: [scan, big, keys]
`)
	return dir
}

func TestTestCommandMissingArgs(t *testing.T) {
	_, _, err := execute(t, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentDir(t *testing.T) {
	_, _, err := execute(t, "test", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
}

func TestTestCommandEmptyDir(t *testing.T) {
	out, _, err := execute(t, "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestTestCommandPasses(t *testing.T) {
	dir := createScenarioDir(t)

	out, _, err := execute(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ lineitem")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommandFailureExitCode(t *testing.T) {
	dir := createScenarioDir(t)
	testutil.WriteFile(t, dir, "wrong.yaml", `
name: wrong
description: "expects too many nodes"
plan: plans/lineitem.yaml
expect:
  nodes: 4
`)

	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong")
	assert.Contains(t, out, "expected 4 nodes, got 3")
}

func TestTestCommandJSON(t *testing.T) {
	dir := createScenarioDir(t)

	out, _, err := execute(t, "test", dir, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Passed)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.NotEmpty(t, resp.Data.Scenarios[0].Hash)
}

func TestTestCommandFilter(t *testing.T) {
	dir := createScenarioDir(t)
	testutil.WriteFile(t, dir, "other.yaml", `
name: other
description: "filtered out"
plan: plans/lineitem.yaml
expect:
  nodes: 99
`)

	out, _, err := execute(t, "test", dir, "--filter", "line*")
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
	assert.NotContains(t, out, "other")
}

func TestTestCommandInvalidFilter(t *testing.T) {
	_, _, err := execute(t, "test", createScenarioDir(t), "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandGolden(t *testing.T) {
	dir := createScenarioDir(t)

	_, _, err := execute(t, "test", dir, "--update")
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "lineitem.golden"))
	require.NoError(t, err)
	assert.Equal(t, testutil.LineitemDocument, string(golden))

	_, _, err = execute(t, "test", dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "golden", "lineitem.golden"), []byte(`{"relsNode":[]}`), 0644))
	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "does not match golden file")
}

func TestTestCommandBadScenario(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "broken.yaml", "name: broken\n")

	_, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
