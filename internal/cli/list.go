package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/relalg/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Database string
	Name     string // only records with this plan name
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Long: `List the documents in a store in the order they were first written.

Examples:
  relalg list --db ./plans.db
  relalg list --db ./plans.db --name nightly --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "only list documents with this plan name")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
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

	var records []store.Record
	if opts.Name != "" {
		records, err = st.ListPlansByName(ctx, opts.Name)
	} else {
		records, err = st.ListPlans(ctx)
	}
	if err != nil {
		return commandError(out, &LoadError{Code: ErrCodeStoreFailed, Message: err.Error(), Err: err})
	}

	views := make([]RecordView, len(records))
	for i, rec := range records {
		views[i] = newRecordView(rec, false)
	}
	return out.Report(views, func(w io.Writer) error {
		return writeRecordTable(w, records)
	})
}

func writeRecordTable(w io.Writer, records []store.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No documents stored.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tHASH\tNAME\tBACKEND\tNODES")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", rec.Seq, rec.Hash, rec.Name, rec.Backend, rec.NodeCount)
	}
	return tw.Flush()
}
