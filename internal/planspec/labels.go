package planspec

import "github.com/google/uuid"

// LabelGenerator produces labels for nodes declared without an id.
type LabelGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 labels, so generated labels
// sort by creation time in logs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7. Panics if the system random
// source fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
