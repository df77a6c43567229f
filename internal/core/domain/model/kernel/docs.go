// Package kernel provides core domain primitives shared across the order
// domain model.
//
// The package currently contains a single building block:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//
// Primitives in this package are immutable and thread-safe, and enforce
// their invariants through constructor functions.
package kernel
