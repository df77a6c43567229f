package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// When constructed from a unit of work with an active transaction, every
// statement here runs inside that transaction.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and all of its lines. GORM inserts the association
// rows in the same transaction as the header, so a failing line insert
// rolls back the whole order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists an order's mutable header fields and replaces its line
// set. The lines are removed and re-inserted rather than diffed; the
// surrounding transaction keeps the empty intermediate state invisible.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"price":          dto.Price,
		"shipping_costs": dto.ShippingCosts,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	if err := db.Delete(&OrderLineDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	return nil
}

// UpdateFulfillment persists only the fulfillment timestamps, leaving the
// pricing fields and lines untouched.
func (r *GormOrderRepository) UpdateFulfillment(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"started_at":   aggregate.StartedAt(),
			"sent_at":      aggregate.SentAt(),
			"delivered_at": aggregate.DeliveredAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	return nil
}

// Delete removes the order row. The ON DELETE CASCADE constraint on
// order_lines removes the lines in the same statement; there is no
// application-level cleanup step.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AverageServiceMinutes computes the average creation-to-delivery time in
// minutes over a restaurant's delivered orders. The second return value is
// false when no order has been delivered yet.
func (r *GormOrderRepository) AverageServiceMinutes(
	ctx context.Context,
	restaurantID kernel.UUID,
) (float64, bool, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, false, err
	}

	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Raw(`
		SELECT AVG(EXTRACT(EPOCH FROM (delivered_at - created_at)) / 60.0)
		FROM orders
		WHERE restaurant_id = ? AND delivered_at IS NOT NULL
	`, restaurantID.Bytes()).Scan(&avg).Error
	if err != nil {
		return 0, false, err
	}

	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}
