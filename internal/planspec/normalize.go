package planspec

import "golang.org/x/text/unicode/norm"

// normalize rewrites every name and literal of the description to NFC.
// Text that differs only in composition then serializes to the same bytes,
// and a varchar literal's precision counts the bytes that are written.
func (s *Spec) normalize() {
	s.Name = nfc(s.Name)
	s.Root = nfc(s.Root)
	for i := range s.Nodes {
		n := &s.Nodes[i]
		n.ID = nfc(n.ID)
		n.Table = nfc(n.Table)
		n.Schema = nfc(n.Schema)
		n.Source = nfc(n.Source)
		for j := range n.Fields {
			n.Fields[j] = nfc(n.Fields[j])
		}
		if n.Condition != nil {
			n.Condition.normalize()
		}
		for j := range n.Exprs {
			n.Exprs[j].normalize()
		}
	}
}

func (e *ExprSpec) normalize() {
	e.Type = nfc(e.Type)
	e.Column = nfc(e.Column)
	e.Call = nfc(e.Call)
	if e.Literal != nil {
		lit := nfc(*e.Literal)
		e.Literal = &lit
	}
	for i := range e.Operands {
		e.Operands[i].normalize()
	}
}

func nfc(s string) string {
	return norm.NFC.String(s)
}
