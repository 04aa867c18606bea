package planspec

import (
	"fmt"

	"github.com/roach88/relalg/internal/plan"
	"github.com/roach88/relalg/internal/rex"
)

// Build builds the description into a plan, generating UUIDv7 labels for
// unlabeled nodes. It returns the plan and the handle of the root node.
func (s *Spec) Build() (*plan.Plan, plan.Handle, error) {
	return s.BuildWith(UUIDv7Generator{})
}

// BuildWith is Build with an explicit label generator.
//
// Every declared node is built exactly once, in dependency order, so a label
// referenced by several parents becomes one shared node. Unreachable nodes
// are built too; they are part of the arena but not of the document.
func (s *Spec) BuildWith(gen LabelGenerator) (*plan.Plan, plan.Handle, error) {
	if len(s.Nodes) == 0 {
		return nil, plan.NoHandle, fmt.Errorf("plan %q has no nodes: %w", s.Name, ErrInvalidNode)
	}

	b := &builder{
		plan:    plan.New(),
		byLabel: make(map[string]int, len(s.Nodes)),
		labels:  make([]string, len(s.Nodes)),
		handles: make(map[string]plan.Handle, len(s.Nodes)),
		active:  make(map[string]bool),
		spec:    s,
	}

	for i, n := range s.Nodes {
		label := n.ID
		if label == "" {
			label = gen.Generate()
		}
		if _, dup := b.byLabel[label]; dup {
			return nil, plan.NoHandle, fmt.Errorf("node %q: %w", label, ErrDuplicateNode)
		}
		b.byLabel[label] = i
		b.labels[i] = label
	}

	for _, label := range b.labels {
		if _, err := b.build(label); err != nil {
			return nil, plan.NoHandle, err
		}
	}

	rootLabel := s.Root
	if rootLabel == "" {
		rootLabel = b.labels[len(b.labels)-1]
	}
	root, ok := b.handles[rootLabel]
	if !ok {
		return nil, plan.NoHandle, fmt.Errorf("root %q: %w", rootLabel, ErrUnknownNode)
	}

	return b.plan, root, nil
}

type builder struct {
	plan    *plan.Plan
	byLabel map[string]int
	labels  []string
	handles map[string]plan.Handle
	active  map[string]bool // labels on the current build path
	spec    *Spec
}

func (b *builder) build(label string) (plan.Handle, error) {
	if h, ok := b.handles[label]; ok {
		return h, nil
	}
	if b.active[label] {
		return plan.NoHandle, fmt.Errorf("node %q: %w", label, ErrCycle)
	}
	idx, ok := b.byLabel[label]
	if !ok {
		return plan.NoHandle, fmt.Errorf("node %q: %w", label, ErrUnknownNode)
	}

	b.active[label] = true
	defer delete(b.active, label)

	h, err := b.buildNode(label, b.spec.Nodes[idx])
	if err != nil {
		return plan.NoHandle, err
	}
	b.handles[label] = h
	return h, nil
}

func (b *builder) buildNode(label string, n NodeSpec) (plan.Handle, error) {
	switch n.Op {
	case OpTableScan:
		if n.Table == "" {
			return plan.NoHandle, fmt.Errorf("node %q: table_scan requires table: %w", label, ErrInvalidNode)
		}
		return b.plan.TableScan(label, n.Table, n.Schema, n.Fields), nil

	case OpFilter:
		if n.Condition == nil {
			return plan.NoHandle, fmt.Errorf("node %q: filter requires condition: %w", label, ErrInvalidNode)
		}
		source, err := b.source(label, n)
		if err != nil {
			return plan.NoHandle, err
		}
		pred, err := n.Condition.Expr()
		if err != nil {
			return plan.NoHandle, fmt.Errorf("node %q: condition: %w", label, err)
		}
		return b.plan.Filter(label, pred, source)

	case OpProject:
		source, err := b.source(label, n)
		if err != nil {
			return plan.NoHandle, err
		}
		exprs := make([]rex.RowExpr, len(n.Exprs))
		for i, e := range n.Exprs {
			expr, err := e.Expr()
			if err != nil {
				return plan.NoHandle, fmt.Errorf("node %q: expr %d: %w", label, i, err)
			}
			exprs[i] = expr
		}
		return b.plan.Project(label, n.Fields, exprs, source)

	default:
		return plan.NoHandle, fmt.Errorf("node %q: unsupported op %q: %w", label, n.Op, ErrInvalidNode)
	}
}

func (b *builder) source(label string, n NodeSpec) (plan.Handle, error) {
	if n.Source == "" {
		return plan.NoHandle, fmt.Errorf("node %q: %s requires source: %w", label, n.Op, ErrInvalidNode)
	}
	h, err := b.build(n.Source)
	if err != nil {
		return plan.NoHandle, fmt.Errorf("node %q: source: %w", label, err)
	}
	return h, nil
}
