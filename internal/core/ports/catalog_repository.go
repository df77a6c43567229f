package ports

import (
	"context"

	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
)

// ProductRepository provides read-only access to the product catalog.
type ProductRepository interface {
	// Get retrieves a single product by identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetByIDs retrieves all products for the given identifiers. Absent
	// identifiers are simply missing from the result; callers decide
	// whether that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}

// RestaurantRepository provides access to restaurant reference data and the
// single derived field the order core writes: the average service time.
type RestaurantRepository interface {
	// Get retrieves a restaurant by identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	// GetAllIDs returns the identifiers of every restaurant. Used by the
	// periodic service-time refresh.
	GetAllIDs(ctx context.Context) ([]kernel.UUID, error)

	// UpdateAverageServiceMinutes overwrites the restaurant's derived
	// average service time.
	UpdateAverageServiceMinutes(ctx context.Context, id kernel.UUID, minutes float64) error
}
