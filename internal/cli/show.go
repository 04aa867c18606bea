package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/relalg/internal/store"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Database string
}

// RecordView is the JSON form of a stored record.
type RecordView struct {
	Hash     string          `json:"hash"`
	Name     string          `json:"name"`
	Backend  string          `json:"backend"`
	Nodes    int             `json:"nodes"`
	Seq      int64           `json:"seq"`
	Document json.RawMessage `json:"document,omitempty"`
}

func newRecordView(rec store.Record, withDocument bool) RecordView {
	view := RecordView{
		Hash:    rec.Hash,
		Name:    rec.Name,
		Backend: rec.Backend,
		Nodes:   rec.NodeCount,
		Seq:     rec.Seq,
	}
	if withDocument {
		view.Document = json.RawMessage(rec.Document)
	}
	return view
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <hash>",
		Short: "Print a stored document",
		Long: `Print the RelAlg document stored under a hash.

Exit codes:
  0 - Document printed
  1 - No document with that hash
  2 - Command error (database not found, etc.)

Example:
  relalg show --db ./plans.db 3f2a...`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runShow(opts *ShowOptions, hash string, cmd *cobra.Command) error {
	out := newPrinter(opts.RootOptions, cmd)

	st, err := openStore(opts.Database, true)
	if err != nil {
		return commandError(out, err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rec, err := st.ReadPlan(ctx, hash)
	if errors.Is(err, store.ErrNotFound) {
		_ = out.Fail(ErrCodeNotFound, fmt.Sprintf("no document with hash %s", hash), nil)
		return exitErrorf(ExitFailure, nil, "%s: no document with hash %s", ErrCodeNotFound, hash)
	}
	if err != nil {
		return commandError(out, &LoadError{Code: ErrCodeStoreFailed, Message: err.Error(), Err: err})
	}

	out.Debugf("%s %q backend=%s nodes=%d seq=%d", rec.Hash, rec.Name, rec.Backend, rec.NodeCount, rec.Seq)
	return out.Document([]byte(rec.Document), newRecordView(rec, true))
}
