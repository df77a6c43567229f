// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: validation,
// transaction management through a unit of work, persistence, and an
// optional best-effort event publication after commit.
package commands

import (
	"context"

	"foodorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions make the atomicity boundary explicit and
// testable in isolation.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides access to the catalog repositories
	// within a transaction, so product prices and shipping defaults are
	// read in the same snapshot the order is written in.
	CatalogRepoFactory interface {
		ProductRepository() ports.ProductRepository
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that span the order aggregate and catalog
	// reference data. Used by create/update (pricing reads + order write)
	// and deliver (order write + restaurant average write).
	UoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
