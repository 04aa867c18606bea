// Package backend resolves which execution backend a serialized plan is
// destined for.
//
// The request comes from the driver.hybrid.execution.backends environment
// variable or a command line flag. Unknown or unavailable backends are not
// errors: resolution falls back to Default and logs a warning.
package backend

import (
	"log/slog"
	"slices"
	"strings"
)

// Name identifies an execution backend.
type Name string

const (
	Default Name = "default"
	Omnisci Name = "omnisci"
)

const (
	// EnvBackend selects the backend.
	EnvBackend = "driver.hybrid.execution.backends"

	// EnvAvailable lists, comma separated, the optional backends this
	// process may target. Default is always available.
	EnvAvailable = "RELALG_AVAILABLE_BACKENDS"
)

// Config is the input to resolution.
type Config struct {
	Requested string
	Available []Name
}

// FromEnv reads a Config through getenv, usually os.Getenv.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{Requested: getenv(EnvBackend)}
	for _, name := range strings.Split(getenv(EnvAvailable), ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			cfg.Available = append(cfg.Available, Name(name))
		}
	}
	return cfg
}

// Selection is the outcome of resolution.
type Selection struct {
	Requested string
	Name      Name
	FellBack  bool
}

// Select resolves cfg. The request is matched case-insensitively.
// A nil logger uses slog.Default.
func Select(cfg Config, logger *slog.Logger) Selection {
	if logger == nil {
		logger = slog.Default()
	}

	sel := Selection{Requested: cfg.Requested, Name: Default}
	requested := Name(strings.ToLower(strings.TrimSpace(cfg.Requested)))

	switch requested {
	case "", Default:
	case Omnisci:
		if slices.Contains(cfg.Available, Omnisci) {
			sel.Name = Omnisci
			break
		}
		sel.FellBack = true
		logger.Warn("backend not available, falling back",
			"requested", cfg.Requested,
			"backend", Default)
	default:
		sel.FellBack = true
		logger.Warn("unsupported backend, falling back",
			"requested", cfg.Requested,
			"backend", Default)
	}

	return sel
}

// Resolve returns the backend name Select picks for cfg.
func Resolve(cfg Config, logger *slog.Logger) Name {
	return Select(cfg, logger).Name
}
