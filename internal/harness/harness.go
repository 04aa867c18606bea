package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/roach88/relalg/internal/backend"
	"github.com/roach88/relalg/internal/plan"
	"github.com/roach88/relalg/internal/planspec"
	"github.com/roach88/relalg/internal/relalg"
	"github.com/roach88/relalg/internal/store"
	"github.com/roach88/relalg/internal/testutil"
)

// Run executes a test scenario and returns the result.
//
// Each scenario runs against a fresh in-memory store for isolation.
//
// Execution flow:
// 1. Load and build the plan description
// 2. Serialize from the root
// 3. Write the document to the store and read it back
// 4. Check expectations
//
// Plan errors are recorded in Result.Failure and checked against
// expect.error. The returned error covers harness failures only.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in tests
	result := NewResult()

	p, doc, err := serialize(scenario, logger)
	if err != nil {
		result.Failure = err.Error()
	} else {
		if err := roundTrip(context.Background(), st, scenario, doc, result); err != nil {
			return nil, err
		}
		for _, h := range doc.Order {
			n, err := p.Node(h)
			if err != nil {
				return nil, fmt.Errorf("emitted handle %d: %w", h, err)
			}
			result.Order = append(result.Order, n.Label())
		}
		result.Nodes = len(doc.Order)
	}

	for _, msg := range Check(scenario, result) {
		result.AddError(msg)
	}
	return result, nil
}

func serialize(scenario *Scenario, logger *slog.Logger) (*plan.Plan, *relalg.Document, error) {
	spec, err := planspec.LoadFile(scenario.Plan)
	if err != nil {
		return nil, nil, err
	}
	p, root, err := spec.BuildWith(testutil.NewLabelSequence("node", scenario.Labels...))
	if err != nil {
		return nil, nil, err
	}
	doc, err := relalg.New(relalg.WithLogger(logger)).Build(p, root)
	if err != nil {
		return nil, nil, err
	}
	return p, doc, nil
}

func roundTrip(ctx context.Context, st *store.Store, scenario *Scenario, doc *relalg.Document, result *Result) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	written, err := st.WritePlan(ctx, store.Record{
		Name:      scenario.Name,
		Backend:   string(backend.Default),
		NodeCount: len(doc.Order),
		Document:  string(data),
	})
	if err != nil {
		return fmt.Errorf("store document: %w", err)
	}

	read, err := st.ReadPlan(ctx, written.Hash)
	if err != nil {
		return fmt.Errorf("read back document: %w", err)
	}

	result.Document = read.Document
	result.Hash = read.Hash
	return nil
}

// Check compares a result against the scenario's expectations and returns
// one message per failed expectation.
func Check(scenario *Scenario, result *Result) []string {
	var failures []string
	want := scenario.Expect

	if want.Error != "" {
		switch {
		case result.Failure == "":
			failures = append(failures, fmt.Sprintf("expected error containing %q, got success", want.Error))
		case !strings.Contains(result.Failure, want.Error):
			failures = append(failures, fmt.Sprintf("expected error containing %q, got %q", want.Error, result.Failure))
		}
		return failures
	}

	if result.Failure != "" {
		return append(failures, fmt.Sprintf("unexpected error: %s", result.Failure))
	}

	if want.Nodes > 0 && result.Nodes != want.Nodes {
		failures = append(failures, fmt.Sprintf("expected %d nodes, got %d", want.Nodes, result.Nodes))
	}

	if len(want.Order) > 0 && !slices.Equal(want.Order, result.Order) {
		failures = append(failures, fmt.Sprintf("expected order %v, got %v", want.Order, result.Order))
	}

	for _, sub := range want.Contains {
		if !strings.Contains(result.Document, sub) {
			failures = append(failures, fmt.Sprintf("document does not contain %q", sub))
		}
	}

	return failures
}
