// Package testutil provides deterministic helpers and shared fixtures for
// tests and the conformance harness.
package testutil
