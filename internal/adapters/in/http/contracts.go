package http

import (
	"time"

	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLine is one product-quantity pair of an order request. Prices are
// never accepted from clients; they are resolved from the catalog.
type NewOrderLine struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// NewOrder is the body of POST /api/v1/orders. ID is optional; the server
// assigns one when absent.
type NewOrder struct {
	ID           *uuid.UUID     `json:"id,omitempty"`
	UserID       uuid.UUID      `json:"userId"`
	RestaurantID uuid.UUID      `json:"restaurantId"`
	Lines        []NewOrderLine `json:"lines"`
}

// UpdateOrder is the body of PUT /api/v1/orders/{orderId}: the complete
// replacement line set.
type UpdateOrder struct {
	Lines []NewOrderLine `json:"lines"`
}

// OrderLine is one line of an order response.
type OrderLine struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Order is the order representation returned by the API.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	RestaurantID  uuid.UUID       `json:"restaurantId"`
	Status        string          `json:"status"`
	Price         decimal.Decimal `json:"price"`
	ShippingCosts decimal.Decimal `json:"shippingCosts"`
	CreatedAt     time.Time       `json:"createdAt"`
	StartedAt     *time.Time      `json:"startedAt,omitempty"`
	SentAt        *time.Time      `json:"sentAt,omitempty"`
	DeliveredAt   *time.Time      `json:"deliveredAt,omitempty"`
	Lines         []OrderLine     `json:"lines"`
}

// RestaurantSummary is the restaurant header attached to order responses.
type RestaurantSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// UserSummary identifies the order's customer.
type UserSummary struct {
	ID uuid.UUID `json:"id"`
}

// OrderDetails is the body of GET /api/v1/orders/{orderId}.
type OrderDetails struct {
	Order      Order             `json:"order"`
	Restaurant RestaurantSummary `json:"restaurant"`
	User       UserSummary       `json:"user"`
}

// UserOrder is one element of a customer's order listing.
type UserOrder struct {
	Order      Order             `json:"order"`
	Restaurant RestaurantSummary `json:"restaurant"`
}

// DeleteResult reports how many orders a delete removed: 1 on success, 0
// when the order did not exist.
type DeleteResult struct {
	Count int `json:"count"`
}

// RestaurantAnalytics is the body of the restaurant dashboard endpoint.
type RestaurantAnalytics struct {
	OrdersYesterday      int64           `json:"ordersYesterday"`
	OrdersPending        int64           `json:"ordersPending"`
	OrdersDeliveredToday int64           `json:"ordersDeliveredToday"`
	InvoicedToday        decimal.Decimal `json:"invoicedToday"`
}

func orderFromAggregate(o *order.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLine{
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return Order{
		ID:            o.ID().Bytes(),
		UserID:        o.UserID().Bytes(),
		RestaurantID:  o.RestaurantID().Bytes(),
		Status:        o.Status().String(),
		Price:         o.Price(),
		ShippingCosts: o.ShippingCosts(),
		CreatedAt:     o.CreatedAt(),
		StartedAt:     o.StartedAt(),
		SentAt:        o.SentAt(),
		DeliveredAt:   o.DeliveredAt(),
		Lines:         lines,
	}
}

func orderFromResponse(resp queries.OrderResponse) Order {
	lines := make([]OrderLine, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		lines = append(lines, OrderLine{
			ProductID: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return Order{
		ID:            resp.ID.Bytes(),
		UserID:        resp.UserID.Bytes(),
		RestaurantID:  resp.RestaurantID.Bytes(),
		Status:        resp.Status,
		Price:         resp.Price,
		ShippingCosts: resp.ShippingCosts,
		CreatedAt:     resp.CreatedAt,
		StartedAt:     resp.StartedAt,
		SentAt:        resp.SentAt,
		DeliveredAt:   resp.DeliveredAt,
		Lines:         lines,
	}
}

func restaurantFromSummary(summary queries.RestaurantSummary) RestaurantSummary {
	return RestaurantSummary{ID: summary.ID.Bytes(), Name: summary.Name}
}
