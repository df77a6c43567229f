package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrListRestaurantOrdersQueryIsNotConstructed = errors.New(
	"ListRestaurantOrdersQuery must be created via NewListRestaurantOrdersQuery constructor",
)

// ListRestaurantOrdersQuery retrieves a restaurant's orders with lines,
// optionally narrowed by status and creation-date range.
//
// Example:
//
//	status := queries.StatusFilterPending
//	query, _ := queries.NewListRestaurantOrdersQuery(restaurantID, queries.OrderFilter{Status: &status})
//	orders, err := handler.Handle(ctx, query)
type ListRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	filter       OrderFilter

	guard guard.ConstructorGuard
}

// NewListRestaurantOrdersQuery creates a listing query for one restaurant.
func NewListRestaurantOrdersQuery(
	restaurantID kernel.UUID,
	filter OrderFilter,
) (ListRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListRestaurantOrdersQuery{}, err
	}

	return ListRestaurantOrdersQuery{
		restaurantID: restaurantID,
		filter:       filter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q ListRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Filter returns the listing filter.
func (q ListRestaurantOrdersQuery) Filter() OrderFilter {
	return q.filter
}
