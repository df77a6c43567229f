package queries

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUserOrdersQueryHandler lists a customer's orders from the database,
// newest first, joining in the restaurant summaries.
type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListUserOrdersQueryHandler creates a handler for per-customer order
// listings.
func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

// Handle executes the listing ordered by creation time descending.
func (h ListUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListUserOrdersQuery,
) ([]ListUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var rows []orderRow
	if err := db.Where("user_id = ?", query.UserID().Bytes()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	orderIDs := make([]uuid.UUID, len(rows))
	restaurantIDs := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]bool, len(rows))
	for i, row := range rows {
		orderIDs[i] = row.ID
		if !seen[row.RestaurantID] {
			seen[row.RestaurantID] = true
			restaurantIDs = append(restaurantIDs, row.RestaurantID)
		}
	}

	linesByOrder, err := loadLinesByOrder(db, orderIDs)
	if err != nil {
		return nil, err
	}

	restaurantNames := make(map[uuid.UUID]string, len(restaurantIDs))
	if len(restaurantIDs) > 0 {
		var restaurants []restaurantRow
		if err = db.Find(&restaurants, "id IN ?", restaurantIDs).Error; err != nil {
			return nil, err
		}
		for _, restaurant := range restaurants {
			restaurantNames[restaurant.ID] = restaurant.Name
		}
	}

	responses := make([]ListUserOrdersQueryResponse, 0, len(rows))
	for _, row := range rows {
		orderResp, respErr := toOrderResponse(row, linesByOrder[row.ID])
		if respErr != nil {
			return nil, respErr
		}

		restaurantID, idErr := kernel.UUIDFromBytes(row.RestaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, ListUserOrdersQueryResponse{
			Order: orderResp,
			Restaurant: RestaurantSummary{
				ID:   restaurantID,
				Name: restaurantNames[row.RestaurantID],
			},
		})
	}

	return responses, nil
}
