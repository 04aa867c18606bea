package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/relalg/internal/backend"
	"github.com/roach88/relalg/internal/ir"
	"github.com/roach88/relalg/internal/relalg"
	"github.com/roach88/relalg/internal/store"
)

// SerializeOptions holds flags for the serialize command.
type SerializeOptions struct {
	*RootOptions
	Output   string // output file path
	Database string // optional store path
	Backend  string // overrides driver.hybrid.execution.backends

	// Getenv reads backend configuration. Defaults to os.Getenv.
	Getenv func(string) string
}

// SerializeResult is the JSON envelope of a serialized plan.
type SerializeResult struct {
	Hash     string          `json:"hash"`
	Nodes    int             `json:"nodes"`
	Backend  string          `json:"backend"`
	Document json.RawMessage `json:"document"`
}

// NewSerializeCommand creates the serialize command.
func NewSerializeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SerializeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serialize <plan-file>",
		Short: "Serialize a plan description to RelAlg JSON",
		Long: `Load a plan description (.yaml, .yml, .json or .cue), build it and
serialize it from its root into a RelAlg JSON document.

The document is printed to stdout. With --format json it is wrapped in an
envelope carrying its hash, node count and target backend.

Examples:
  relalg serialize plan.yaml
  relalg serialize plan.cue -o plan.json
  relalg serialize plan.yaml --db ./plans.db --backend omnisci`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSerialize(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&opts.Database, "db", "", "store the document in this SQLite database")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "target backend (overrides "+backend.EnvBackend+")")

	return cmd
}

func runSerialize(opts *SerializeOptions, path string, cmd *cobra.Command) error {
	out := newPrinter(opts.RootOptions, cmd)

	loaded, err := LoadPlan(path)
	if err != nil {
		return commandError(out, err)
	}
	out.Debugf("Loaded plan %q with %d node(s)", loaded.Spec.Name, loaded.Plan.Len())

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := backend.FromEnv(getenv)
	if opts.Backend != "" {
		cfg.Requested = opts.Backend
	}
	sel := backend.Select(cfg, slog.Default())

	doc, err := relalg.New(relalg.WithLogger(slog.Default())).Build(loaded.Plan, loaded.Root)
	if err != nil {
		return commandError(out, &LoadError{Code: ErrCodeSerialize, Message: err.Error(), Err: err})
	}
	data, err := doc.Marshal()
	if err != nil {
		return commandError(out, &LoadError{Code: ErrCodeSerialize, Message: err.Error(), Err: err})
	}

	result := SerializeResult{
		Hash:     ir.HashDocument(data),
		Nodes:    len(doc.Order),
		Backend:  string(sel.Name),
		Document: json.RawMessage(data),
	}
	out.Debugf("Serialized %d node(s), hash %s, backend %s", result.Nodes, result.Hash, result.Backend)

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, data, 0644); err != nil {
			return commandError(out, &LoadError{Code: ErrCodeWriteFailed, Message: fmt.Sprintf("writing output file: %v", err), Err: err})
		}
		out.Debugf("Wrote document to %s", opts.Output)
	}

	if opts.Database != "" {
		if err := storeDocument(cmd.Context(), opts.Database, loaded.Spec.Name, result); err != nil {
			return commandError(out, err)
		}
	}

	return out.Document(data, result)
}

func storeDocument(ctx context.Context, dbPath, name string, result SerializeResult) error {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openStore(dbPath, false)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.WritePlan(ctx, store.Record{
		Hash:      result.Hash,
		Name:      name,
		Backend:   result.Backend,
		NodeCount: result.Nodes,
		Document:  string(result.Document),
	})
	if err != nil {
		return &LoadError{Code: ErrCodeStoreFailed, Message: err.Error(), Err: err}
	}
	slog.Info("document stored",
		"hash", rec.Hash,
		"name", rec.Name,
		"seq", rec.Seq,
		"db", dbPath)
	return nil
}
