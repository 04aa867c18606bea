package relalg

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/roach88/relalg/internal/ir"
	"github.com/roach88/relalg/internal/plan"
	"github.com/roach88/relalg/internal/rex"
)

// RelsKey is the single top-level key of a document.
const RelsKey = "relsNode"

// Document is a serialized plan before it is written out.
type Document struct {
	// Rels holds the encoded nodes; Rels[i] carries id strconv.Itoa(i).
	Rels ir.IRArray

	// Order maps each emitted position back to its plan handle.
	Order []plan.Handle
}

// Value returns the document as {"relsNode": [...]}.
func (d *Document) Value() ir.IRObject {
	return ir.IRObject{RelsKey: d.Rels}
}

// Marshal writes the document as canonical JSON.
func (d *Document) Marshal() ([]byte, error) {
	return ir.MarshalCanonical(d.Value())
}

// Serializer turns plans into RelAlg documents. The zero value is not
// usable; create one with New. A Serializer holds no per-call state and may
// be shared between goroutines.
type Serializer struct {
	logger *slog.Logger
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithLogger sets the logger used for traversal diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Serializer) {
		s.logger = logger
	}
}

// New creates a Serializer. Without WithLogger it logs to slog.Default().
func New(opts ...Option) *Serializer {
	s := &Serializer{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Linearize returns the handles reachable from root in emission order.
func (s *Serializer) Linearize(p *plan.Plan, root plan.Handle) ([]plan.Handle, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot serialize nil plan")
	}
	if !p.Valid(root) {
		return nil, fmt.Errorf("root %d: %w", root, plan.ErrInvalidSource)
	}
	return linearize(p, root), nil
}

// Build encodes every node reachable from root, in emission order.
func (s *Serializer) Build(p *plan.Plan, root plan.Handle) (*Document, error) {
	order, err := s.Linearize(p, root)
	if err != nil {
		return nil, err
	}

	rels := make(ir.IRArray, len(order))
	for i, h := range order {
		n, err := p.Node(h)
		if err != nil {
			return nil, err
		}

		id := strconv.Itoa(i)
		enc, err := n.Encode(id)
		if err != nil {
			return nil, fmt.Errorf("serialize node %s: %w", id, err)
		}
		rels[i] = enc
		s.warnUnencodable(n, id)

		s.logger.Debug("node emitted",
			"id", id,
			"op", n.Op(),
			"label", n.Label(),
			"handle", int(h))
	}

	return &Document{Rels: rels, Order: order}, nil
}

// warnUnencodable logs each constant of n that was written as an empty object.
func (s *Serializer) warnUnencodable(n plan.Node, id string) {
	for _, e := range n.Exprs() {
		rex.Walk(e, func(e rex.RowExpr) {
			c, ok := e.(*rex.Constant)
			if !ok || c.Encodable() {
				return
			}
			s.logger.Warn("constant type has no literal encoding; emitting empty object",
				"id", id,
				"label", n.Label(),
				"type", c.Type(),
				"value", c.Value())
		})
	}
}

// Serialize returns the RelAlg JSON document for the plan rooted at root.
func (s *Serializer) Serialize(p *plan.Plan, root plan.Handle) (string, error) {
	doc, err := s.Build(p, root)
	if err != nil {
		return "", err
	}
	out, err := doc.Marshal()
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(out), nil
}

// Serialize is shorthand for New().Serialize(p, root).
func Serialize(p *plan.Plan, root plan.Handle) (string, error) {
	return New().Serialize(p, root)
}
