// Package ir provides the JSON value model used for every encoded RelAlg
// artifact: row expressions, plan nodes and whole documents.
//
// This package contains value types and their canonical serialization only.
// All other internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - NO float types anywhere - fixed-point literals travel as int64 digits
//     plus an explicit scale
//   - Object keys are always written in sorted order, so the same plan
//     always produces the same bytes
//   - String bytes pass through unchanged; NFC is applied on input by planspec
package ir
