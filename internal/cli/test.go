package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/relalg/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern on scenario name)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Hash   string   `json:"hash,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run conformance scenarios",
		Long: `Run every *.yaml scenario in a directory through the serializer.

A scenario passes when its expectations hold and, if
<scenarios-dir>/golden/<name>.golden exists, the document matches it.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  relalg test ./scenarios
  relalg test ./scenarios --filter "lineitem*"
  relalg test ./scenarios --update
  relalg test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	out := newPrinter(opts.RootOptions, cmd)

	if info, err := os.Stat(scenariosDir); err != nil || !info.IsDir() {
		return exitErrorf(ExitCommandError, nil, "scenarios directory not found: %s", scenariosDir)
	}
	if opts.Filter != "" {
		if _, err := filepath.Match(opts.Filter, ""); err != nil {
			return exitErrorf(ExitCommandError, err, "invalid filter pattern")
		}
	}

	scenarios, err := harness.LoadDir(scenariosDir)
	if err != nil {
		_ = out.Fail(ErrCodeScenarioFailed, err.Error(), nil)
		return exitErrorf(ExitCommandError, err, "failed to load scenarios")
	}

	result := TestResult{Scenarios: []ScenarioResult{}}
	for _, scenario := range scenarios {
		if opts.Filter != "" {
			if matched, _ := filepath.Match(opts.Filter, scenario.Name); !matched {
				continue
			}
		}
		out.Debugf("Running %s: %s", scenario.Name, scenario.Description)

		scenResult := runScenario(scenario, scenariosDir, opts.Update)
		result.Scenarios = append(result.Scenarios, scenResult)
		result.Total++
		if scenResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if err := out.Report(result, func(w io.Writer) error {
		writeTestSummary(w, result)
		return nil
	}); err != nil {
		return err
	}

	if result.Failed > 0 {
		return exitErrorf(ExitFailure, nil, "%d of %d scenario(s) failed", result.Failed, result.Total)
	}
	return nil
}

// runScenario executes a single scenario and compares it with its golden
// file, if one exists.
func runScenario(scenario *harness.Scenario, scenariosDir string, update bool) ScenarioResult {
	result, err := harness.Run(scenario)
	if err != nil {
		return ScenarioResult{
			Name:   scenario.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	scenResult := ScenarioResult{
		Name:   scenario.Name,
		Pass:   result.Pass,
		Hash:   result.Hash,
		Errors: result.Errors,
	}
	if result.Document == "" {
		return scenResult
	}

	goldenPath := goldenFilePath(scenariosDir, scenario.Name)
	if update {
		if err := writeGoldenFile(goldenPath, result.Document); err != nil {
			scenResult.Pass = false
			scenResult.Errors = append(scenResult.Errors, fmt.Sprintf("failed to update golden file: %v", err))
		}
		return scenResult
	}

	golden, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		return scenResult
	}
	if err != nil {
		scenResult.Pass = false
		scenResult.Errors = append(scenResult.Errors, fmt.Sprintf("golden comparison failed: %v", err))
		return scenResult
	}
	if !bytes.Equal(golden, []byte(result.Document)) {
		scenResult.Pass = false
		scenResult.Errors = append(scenResult.Errors, "document does not match golden file (run with --update to regenerate)")
	}
	return scenResult
}

// goldenFilePath returns the path to the golden file for a scenario.
func goldenFilePath(scenariosDir, name string) string {
	return filepath.Join(scenariosDir, "golden", name+".golden")
}

func writeGoldenFile(path, document string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	return os.WriteFile(path, []byte(document), 0644)
}

func writeTestSummary(w io.Writer, result TestResult) {
	if result.Total == 0 {
		fmt.Fprintln(w, "No scenarios found.")
		return
	}

	for _, s := range result.Scenarios {
		if s.Pass {
			fmt.Fprintf(w, "✓ %s\n", s.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", s.Name)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
}
