// Package store provides SQLite-backed storage for serialized RelAlg
// documents.
//
// Documents are content addressed: the key of a record is ir.HashDocument of
// its canonical bytes, so writing the same plan twice stores it once.
//
// # Ordering
//
// Every record gets a seq from a logical clock (one past the current
// maximum), never from wall time. ListPlans orders by
// seq ASC, hash COLLATE BINARY ASC, so listings are identical across runs.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Reads are served from an in-process cache once a record has been seen.
// Records are immutable, so the cache never needs invalidation.
package store
