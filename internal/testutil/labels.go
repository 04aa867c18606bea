package testutil

import (
	"fmt"
	"sync"
)

// LabelSequence hands out predetermined node labels, then generated ones.
//
// Fixed labels are returned in order. Once they are used up, Generate
// returns prefix-1, prefix-2, ... counting every label handed out, so the
// n-th call always returns the same value. This makes emission order and
// golden snapshots reproducible for plans that declare nodes without ids.
//
// Implements planspec.LabelGenerator.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type LabelSequence struct {
	mu     sync.Mutex
	prefix string
	labels []string
	next   int
}

// NewLabelSequence creates a sequence returning labels first.
//
// If prefix is empty, generated labels use "node".
func NewLabelSequence(prefix string, labels ...string) *LabelSequence {
	if prefix == "" {
		prefix = "node"
	}
	return &LabelSequence{prefix: prefix, labels: labels}
}

// Generate returns the next label.
func (s *LabelSequence) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	if s.next <= len(s.labels) {
		return s.labels[s.next-1]
	}
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}
