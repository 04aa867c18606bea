package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relalg/internal/testutil"
)

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "relalg", cmd.Use)
	assert.Contains(t, cmd.Long, "RelAlg")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"serialize", "show", "list", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestSerializeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	serializeCmd, _, err := cmd.Find([]string{"serialize"})
	require.NoError(t, err)

	outputFlag := serializeCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	assert.NotNil(t, serializeCmd.Flags().Lookup("db"))
	assert.NotNil(t, serializeCmd.Flags().Lookup("backend"))
}

func TestInvalidFormat(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "plan.yaml", testutil.LineitemYAML)

	_, _, err := execute(t, "serialize", path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestShowAndListRequireDB(t *testing.T) {
	for _, args := range [][]string{{"show", "abc"}, {"list"}} {
		t.Run(args[0], func(t *testing.T) {
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `required flag(s) "db" not set`)
		})
	}
}
