package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery retrieves a customer's orders, newest first, each
// with its lines and the restaurant summary.
type ListUserOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery creates a listing query for one customer.
func NewListUserOrdersQuery(userID kernel.UUID) (ListUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListUserOrdersQuery{}, err
	}

	return ListUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

// UserID returns the customer whose orders are listed.
func (q ListUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// ListUserOrdersQueryResponse is one order of the customer together with
// the restaurant it was placed at.
type ListUserOrdersQueryResponse struct {
	Order      OrderResponse
	Restaurant RestaurantSummary
}
