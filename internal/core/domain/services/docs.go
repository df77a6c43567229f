// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates or reference data.
//
// The pricing calculator is the only service: it derives an order's
// shipping costs and total from its product lines, the catalog prices and
// the restaurant's default shipping costs. It is a pure function with no
// side effects and is independently testable.
package services
