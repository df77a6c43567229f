package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRestaurantAnalyticsQueryHandler computes the restaurant dashboard
// metrics with four independent aggregate queries. Each is a snapshot
// read; this is a dashboard, not a ledger.
type GetRestaurantAnalyticsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetRestaurantAnalyticsQueryHandler creates a handler for restaurant
// analytics.
func NewGetRestaurantAnalyticsQueryHandler(db *gorm.DB) GetRestaurantAnalyticsQueryHandler {
	return GetRestaurantAnalyticsQueryHandler{db: db, now: time.Now}
}

// WithClock returns a copy of the handler using the given clock. Day
// boundaries are computed from this clock, which keeps window tests off
// the wall clock.
func (h GetRestaurantAnalyticsQueryHandler) WithClock(now func() time.Time) GetRestaurantAnalyticsQueryHandler {
	h.now = now
	return h
}

// Handle executes the four aggregations. Day boundaries come from the
// handler's clock: yesterday is [yesterday 00:00, today 00:00), today is
// [today 00:00, now].
func (h GetRestaurantAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantAnalyticsQuery,
) (GetRestaurantAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	now := h.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	db := h.db.WithContext(ctx)
	restaurantID := query.RestaurantID().Bytes()

	var response GetRestaurantAnalyticsQueryResponse

	if err := db.Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND created_at >= ? AND created_at < ?
	`, restaurantID, yesterdayStart, todayStart).Scan(&response.YesterdayCount).Error; err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	if err := db.Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND started_at IS NULL
	`, restaurantID).Scan(&response.PendingCount).Error; err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	if err := db.Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND delivered_at >= ? AND delivered_at <= ?
	`, restaurantID, todayStart, now).Scan(&response.DeliveredTodayCount).Error; err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	var invoiced decimal.NullDecimal
	if err := db.Raw(`
		SELECT SUM(price)
		FROM orders
		WHERE restaurant_id = ? AND created_at >= ? AND created_at <= ?
	`, restaurantID, todayStart, now).Scan(&invoiced).Error; err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	response.InvoicedToday = decimal.Zero
	if invoiced.Valid {
		response.InvoicedToday = invoiced.Decimal
	}

	return response, nil
}
