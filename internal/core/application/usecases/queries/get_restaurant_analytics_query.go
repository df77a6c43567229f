package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRestaurantAnalyticsQueryIsNotConstructed = errors.New(
	"GetRestaurantAnalyticsQuery must be created via NewGetRestaurantAnalyticsQuery constructor",
)

// GetRestaurantAnalyticsQuery retrieves dashboard metrics for one
// restaurant, windowed by calendar days of the caller's clock.
type GetRestaurantAnalyticsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantAnalyticsQuery creates an analytics query for a restaurant.
func NewGetRestaurantAnalyticsQuery(restaurantID kernel.UUID) (GetRestaurantAnalyticsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantAnalyticsQuery{}, err
	}

	return GetRestaurantAnalyticsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantAnalyticsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant the metrics are computed for.
func (q GetRestaurantAnalyticsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantAnalyticsQueryResponse carries the four dashboard metrics.
// The metrics come from independent queries; no cross-metric consistency
// is guaranteed.
type GetRestaurantAnalyticsQueryResponse struct {
	// YesterdayCount is the number of orders created yesterday,
	// [yesterday 00:00, today 00:00).
	YesterdayCount int64

	// PendingCount is the number of orders not yet taken into preparation.
	PendingCount int64

	// DeliveredTodayCount is the number of orders delivered since today
	// 00:00.
	DeliveredTodayCount int64

	// InvoicedToday is the sum of order totals over orders created since
	// today 00:00.
	InvoicedToday decimal.Decimal
}
