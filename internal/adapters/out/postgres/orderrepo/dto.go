// Package orderrepo implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and their
// relational representation.
package orderrepo

import (
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order header. Lines are a
// GORM one-to-many with a cascading foreign key, so deleting the order row
// removes its lines in the same statement.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID  uuid.UUID       `gorm:"type:uuid;index"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2)"`
	ShippingCosts decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt     time.Time       `gorm:"index"`
	StartedAt     *time.Time
	SentAt        *time.Time
	DeliveredAt   *time.Time
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database representation of one order line. The unit
// price is the snapshot captured at write time, not a live product
// reference.
type OrderLineDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		RestaurantID:  aggregate.RestaurantID().Bytes(),
		Price:         aggregate.Price(),
		ShippingCosts: aggregate.ShippingCosts(),
		CreatedAt:     aggregate.CreatedAt(),
		StartedAt:     aggregate.StartedAt(),
		SentAt:        aggregate.SentAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		Lines:         lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, userID, restaurantID,
		dto.Price, dto.ShippingCosts,
		dto.CreatedAt,
		dto.StartedAt, dto.SentAt, dto.DeliveredAt,
		lines,
	)
}
