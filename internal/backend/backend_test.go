package backend

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		want      Name
		fellBack  bool
		warnMatch string
	}{
		{"empty", Config{}, Default, false, ""},
		{"default", Config{Requested: "default"}, Default, false, ""},
		{"omnisci available", Config{Requested: "omnisci", Available: []Name{Omnisci}}, Omnisci, false, ""},
		{"omnisci mixed case", Config{Requested: "OmniSci", Available: []Name{Omnisci}}, Omnisci, false, ""},
		{"omnisci unavailable", Config{Requested: "omnisci"}, Default, true, "backend not available"},
		{"unsupported", Config{Requested: "velox-gpu"}, Default, true, "unsupported backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := captureLogger()

			sel := Select(tt.cfg, logger)
			assert.Equal(t, tt.want, sel.Name)
			assert.Equal(t, tt.fellBack, sel.FellBack)
			assert.Equal(t, tt.cfg.Requested, sel.Requested)

			if tt.warnMatch == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), "level=WARN")
				assert.Contains(t, buf.String(), tt.warnMatch)
			}
		})
	}
}

func TestResolveNilLogger(t *testing.T) {
	assert.Equal(t, Default, Resolve(Config{Requested: "nope"}, nil))
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		EnvBackend:   "OMNISCI",
		EnvAvailable: " omnisci, ,Other ",
	}
	cfg := FromEnv(func(k string) string { return env[k] })

	assert.Equal(t, "OMNISCI", cfg.Requested)
	assert.Equal(t, []Name{Omnisci, "other"}, cfg.Available)
	assert.Equal(t, Omnisci, Resolve(cfg, nil))
}

func TestFromEnvUnset(t *testing.T) {
	cfg := FromEnv(func(string) string { return "" })

	assert.Empty(t, cfg.Requested)
	assert.Nil(t, cfg.Available)
	assert.Equal(t, Default, Resolve(cfg, nil))
}
