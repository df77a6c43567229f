package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRestaurantOrdersQueryHandler lists a restaurant's orders from the
// database, applying the status and date predicates of the filter builder.
type ListRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListRestaurantOrdersQueryHandler creates a handler for restaurant
// order listings.
func NewListRestaurantOrdersQueryHandler(db *gorm.DB) ListRestaurantOrdersQueryHandler {
	return ListRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the listing. Orders are returned oldest first together
// with their lines; an unknown restaurant simply yields an empty list.
func (h ListRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var rows []orderRow
	scope := query.Filter().Apply(db.Where("restaurant_id = ?", query.RestaurantID().Bytes()))
	if err := scope.Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}

	orderIDs := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		orderIDs[i] = row.ID
	}

	linesByOrder, err := loadLinesByOrder(db, orderIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		resp, respErr := toOrderResponse(row, linesByOrder[row.ID])
		if respErr != nil {
			return nil, respErr
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
