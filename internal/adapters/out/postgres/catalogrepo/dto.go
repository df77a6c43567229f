// Package catalogrepo implements the read-mostly repositories for the
// catalog entities: products and restaurants. Orders snapshot catalog
// prices at write time, so these repositories are queried inside the same
// transaction as the order writes.
package catalogrepo

import (
	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the database representation of a product.
type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// RestaurantDTO is the database representation of a restaurant.
// AverageServiceMinutes is a derived statistic; NULL until the first order
// is delivered.
type RestaurantDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                  string          `gorm:"not null"`
	DefaultShippingCosts  decimal.Decimal `gorm:"type:decimal(12,2)"`
	AverageServiceMinutes *float64
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(id, restaurantID, dto.Name, dto.Price)
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreRestaurant(id, dto.Name, dto.DefaultShippingCosts, dto.AverageServiceMinutes)
}
