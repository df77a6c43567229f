// Package queries contains read-only operations over persisted orders.
// Query handlers work directly on the database connection, bypassing the
// domain aggregates and unit of work: no transaction is needed for a
// snapshot read, and the response types are shaped for the transport layer
// rather than for business logic.
package queries

import (
	"time"

	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLineResponse is one line of a listed order.
type OrderLineResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// RestaurantSummary is the restaurant header attached to listed orders.
type RestaurantSummary struct {
	ID   kernel.UUID
	Name string
}

// UserSummary identifies the owning customer. User accounts live outside
// this service, so the identifier is all there is to summarize.
type UserSummary struct {
	ID kernel.UUID
}

// OrderResponse is a fully materialized order as returned by the read side.
type OrderResponse struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	RestaurantID  kernel.UUID
	Status        string
	Price         decimal.Decimal
	ShippingCosts decimal.Decimal
	CreatedAt     time.Time
	StartedAt     *time.Time
	SentAt        *time.Time
	DeliveredAt   *time.Time
	Lines         []OrderLineResponse
}

// orderRow maps the orders table for read-side scans.
type orderRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RestaurantID  uuid.UUID
	Price         decimal.Decimal
	ShippingCosts decimal.Decimal
	CreatedAt     time.Time
	StartedAt     *time.Time
	SentAt        *time.Time
	DeliveredAt   *time.Time
}

func (orderRow) TableName() string {
	return "orders"
}

// lineRow maps the order_lines table for read-side scans.
type lineRow struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

func (lineRow) TableName() string {
	return "order_lines"
}

// restaurantRow maps the restaurants table for summary joins.
type restaurantRow struct {
	ID   uuid.UUID
	Name string
}

func (restaurantRow) TableName() string {
	return "restaurants"
}

// displayStatus derives the lifecycle status shown to clients from the
// fulfillment timestamps.
func displayStatus(startedAt, sentAt, deliveredAt *time.Time) string {
	switch {
	case deliveredAt != nil:
		return "delivered"
	case sentAt != nil:
		return "sent"
	case startedAt != nil:
		return "in process"
	default:
		return "pending"
	}
}

func toOrderResponse(row orderRow, lines []lineRow) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	userID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:            id,
		UserID:        userID,
		RestaurantID:  restaurantID,
		Status:        displayStatus(row.StartedAt, row.SentAt, row.DeliveredAt),
		Price:         row.Price,
		ShippingCosts: row.ShippingCosts,
		CreatedAt:     row.CreatedAt,
		StartedAt:     row.StartedAt,
		SentAt:        row.SentAt,
		DeliveredAt:   row.DeliveredAt,
		Lines:         make([]OrderLineResponse, 0, len(lines)),
	}

	for _, line := range lines {
		productID, lineErr := kernel.UUIDFromBytes(line.ProductID[:])
		if lineErr != nil {
			return OrderResponse{}, lineErr
		}
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return resp, nil
}

// loadLinesByOrder fetches the lines for a set of orders in one query and
// groups them by owning order.
func loadLinesByOrder(db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]lineRow, error) {
	grouped := make(map[uuid.UUID][]lineRow, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	var rows []lineRow
	if err := db.Find(&rows, "order_id IN ?", orderIDs).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.OrderID] = append(grouped[row.OrderID], row)
	}
	return grouped, nil
}
