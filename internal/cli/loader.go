package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/roach88/relalg/internal/plan"
	"github.com/roach88/relalg/internal/planspec"
	"github.com/roach88/relalg/internal/store"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeUnsupported    = "E002" // Unsupported plan file format
	ErrCodeParseFailed    = "E003" // Plan description could not be decoded
	ErrCodeBuildFailed    = "E004" // Plan description could not be built
	ErrCodeNotFound       = "E005" // Path or document not found
	ErrCodeSerialize      = "E006" // Serialization failed
	ErrCodeWriteFailed    = "E007" // File write error
	ErrCodeStoreFailed    = "E008" // Database error
	ErrCodeScenarioFailed = "E009" // Scenario could not be loaded or run
)

// LoadError represents an error that occurred while loading a plan.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadedPlan is a plan description built into a plan.
type LoadedPlan struct {
	Spec *planspec.Spec
	Plan *plan.Plan
	Root plan.Handle
}

// LoadPlan reads, parses and builds the plan description at path.
func LoadPlan(path string) (*LoadedPlan, error) {
	if _, err := planspec.FormatFromPath(path); err != nil {
		return nil, &LoadError{Code: ErrCodeUnsupported, Message: err.Error(), Err: err}
	}

	spec, err := planspec.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("plan file not found: %s", path), Err: err}
		}
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: err.Error(), Err: err}
	}

	p, root, err := spec.Build()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: err.Error(), Err: err}
	}

	return &LoadedPlan{Spec: spec, Plan: p, Root: root}, nil
}

// openStore opens the database named by --db. Read-only commands pass
// mustExist so a mistyped path is reported instead of creating an empty
// database.
func openStore(path string, mustExist bool) (*store.Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: "--db is required"}
	}
	if mustExist {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("database not found: %s", path), Err: err}
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeStoreFailed, Message: err.Error(), Err: err}
	}
	return st, nil
}

// codeOf returns the error code carried by err, or ErrCodeGeneric.
func codeOf(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	return ErrCodeGeneric
}

// messageOf returns the message of a LoadError, or err.Error().
func messageOf(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Message
	}
	return err.Error()
}

// commandError prints err and returns it as a command-level exit error.
func commandError(out *Printer, err error) error {
	code, message := codeOf(err), messageOf(err)
	_ = out.Fail(code, message, nil)
	return exitErrorf(ExitCommandError, nil, "%s: %s", code, message)
}
