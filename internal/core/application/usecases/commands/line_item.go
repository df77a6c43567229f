package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/services"
)

var (
	ErrLineItemIsNotConstructed = errors.New(
		"LineItem must be created via NewLineItem constructor")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
	ErrLineItemsRequired = errors.New("at least one line item is required")
)

// LineItem is one product-quantity pair of a create or update request.
// Unit prices are not part of the input: they are resolved from the catalog
// at write time.
type LineItem struct {
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewLineItem creates a line item, validating the product identifier and
// that the quantity is positive.
func NewLineItem(productID kernel.UUID, quantity int) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, ErrQuantityIsInvalid
	}

	return LineItem{
		productID:     productID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced catalog product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the requested quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

func validateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrLineItemsRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func toPricingInputs(items []LineItem) []services.LineInput {
	inputs := make([]services.LineInput, len(items))
	for i, item := range items {
		inputs[i] = services.LineInput{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		}
	}
	return inputs
}
