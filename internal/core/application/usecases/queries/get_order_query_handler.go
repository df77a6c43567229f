package queries

import (
	"context"
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with lines and summaries from
// the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var row orderRow
	if err := db.First(&row, "id = ?", query.OrderID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	lines, err := loadLinesByOrder(db, []uuid.UUID{row.ID})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderResp, err := toOrderResponse(row, lines[row.ID])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var restaurant restaurantRow
	if err = db.First(&restaurant, "id = ?", row.RestaurantID).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderQueryResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order:      orderResp,
		Restaurant: RestaurantSummary{ID: restaurantID, Name: restaurant.Name},
		User:       UserSummary{ID: orderResp.UserID},
	}, nil
}
