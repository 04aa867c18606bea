package planspec

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Format is the encoding of a plan description.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatCUE
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatCUE:
		return "cue"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return 0, fmt.Errorf("unsupported plan file extension %q (want .yaml, .yml, .json or .cue)", filepath.Ext(path))
	}
}

// LoadFile reads and parses a plan description from disk.
func LoadFile(path string) (*Spec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	spec, err := parse(data, format, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if spec.Name == "" {
		spec.Name = nfc(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	return spec, nil
}

// Parse decodes a plan description.
func Parse(data []byte, format Format) (*Spec, error) {
	return parse(data, format, "plan."+format.String())
}

// parse decodes data and normalizes all text in the result to NFC.
func parse(data []byte, format Format, filename string) (*Spec, error) {
	var (
		spec *Spec
		err  error
	)
	switch format {
	case FormatYAML, FormatJSON:
		spec, err = parseYAML(data)
	case FormatCUE:
		spec, err = parseCUE(data, filename)
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	if err != nil {
		return nil, err
	}
	spec.normalize()
	return spec, nil
}

// parseYAML decodes YAML and, since YAML is a superset of JSON, JSON.
// Unknown fields are rejected.
func parseYAML(data []byte) (*Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec Spec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty plan description: %w", ErrInvalidNode)
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &spec, nil
}

// parseCUE compiles the file, unifies it with #Plan and decodes the result.
func parseCUE(data []byte, filename string) (*Spec, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile plan schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Plan"))

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compile cue: %s", cueerrors.Details(err, nil))
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate cue: %s", cueerrors.Details(err, nil))
	}

	var spec Spec
	if err := unified.Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode cue: %w", err)
	}
	return &spec, nil
}
