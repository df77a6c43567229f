// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// The sentinels are the classification axis: callers match with
// errors.Is(err, errs.ErrObjectNotFound) rather than type assertions,
// which keeps transport layers decoupled from the concrete structs.
package errs
