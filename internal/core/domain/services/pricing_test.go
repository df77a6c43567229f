package services_test

import (
	"testing"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogLookup(prices map[kernel.UUID]decimal.Decimal) services.PriceLookup {
	return func(productID kernel.UUID) (decimal.Decimal, bool) {
		price, ok := prices[productID]
		return price, ok
	}
}

func TestPricingCalculator_Calculate(t *testing.T) {
	calculator := services.NewPricingCalculator()
	productA := kernel.NewUUID()
	productB := kernel.NewUUID()
	defaultShipping := decimal.NewFromFloat(2.50)

	prices := map[kernel.UUID]decimal.Decimal{
		productA: decimal.NewFromFloat(4.00),
		productB: decimal.NewFromFloat(3.00),
	}

	t.Run("subtotal above threshold ships free", func(t *testing.T) {
		lines, pricing, err := calculator.Calculate(
			[]services.LineInput{
				{ProductID: productA, Quantity: 2},
				{ProductID: productB, Quantity: 1},
			},
			defaultShipping,
			catalogLookup(prices),
		)

		require.NoError(t, err)
		assert.Len(t, lines, 2)
		assert.True(t, pricing.Subtotal.Equal(decimal.NewFromFloat(11.00)),
			"subtotal was %s", pricing.Subtotal)
		assert.True(t, pricing.ShippingCosts.IsZero(), "shipping was %s", pricing.ShippingCosts)
		assert.True(t, pricing.Total.Equal(decimal.NewFromFloat(11.00)))
	})

	t.Run("subtotal below threshold pays default shipping", func(t *testing.T) {
		_, pricing, err := calculator.Calculate(
			[]services.LineInput{{ProductID: productA, Quantity: 1}},
			defaultShipping,
			catalogLookup(prices),
		)

		require.NoError(t, err)
		assert.True(t, pricing.Subtotal.Equal(decimal.NewFromFloat(4.00)))
		assert.True(t, pricing.ShippingCosts.Equal(defaultShipping))
		assert.True(t, pricing.Total.Equal(decimal.NewFromFloat(6.50)))
	})

	t.Run("subtotal of exactly the threshold still pays shipping", func(t *testing.T) {
		product := kernel.NewUUID()
		_, pricing, err := calculator.Calculate(
			[]services.LineInput{{ProductID: product, Quantity: 2}},
			defaultShipping,
			catalogLookup(map[kernel.UUID]decimal.Decimal{
				product: decimal.NewFromFloat(5.00),
			}),
		)

		require.NoError(t, err)
		assert.True(t, pricing.Subtotal.Equal(decimal.NewFromFloat(10.00)))
		assert.True(t, pricing.ShippingCosts.Equal(defaultShipping))
		assert.True(t, pricing.Total.Equal(decimal.NewFromFloat(12.50)))
	})

	t.Run("line prices are snapshotted from the lookup", func(t *testing.T) {
		lines, _, err := calculator.Calculate(
			[]services.LineInput{{ProductID: productB, Quantity: 3}},
			defaultShipping,
			catalogLookup(prices),
		)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].UnitPrice().Equal(decimal.NewFromFloat(3.00)))
		assert.True(t, lines[0].Subtotal().Equal(decimal.NewFromFloat(9.00)))
	})

	t.Run("unknown product fails", func(t *testing.T) {
		_, _, err := calculator.Calculate(
			[]services.LineInput{{ProductID: kernel.NewUUID(), Quantity: 1}},
			defaultShipping,
			catalogLookup(prices),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrUnknownProduct)
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, _, err := calculator.Calculate(nil, defaultShipping, catalogLookup(prices))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrLinesAreRequired)
	})

	t.Run("non-positive quantity fails", func(t *testing.T) {
		_, _, err := calculator.Calculate(
			[]services.LineInput{{ProductID: productA, Quantity: 0}},
			defaultShipping,
			catalogLookup(prices),
		)

		require.Error(t, err)
	})

	t.Run("negative default shipping fails", func(t *testing.T) {
		_, _, err := calculator.Calculate(
			[]services.LineInput{{ProductID: productA, Quantity: 1}},
			decimal.NewFromFloat(-1),
			catalogLookup(prices),
		)

		require.Error(t, err)
	})

	t.Run("zero-priced product is accepted", func(t *testing.T) {
		product := kernel.NewUUID()
		_, pricing, err := calculator.Calculate(
			[]services.LineInput{{ProductID: product, Quantity: 5}},
			defaultShipping,
			catalogLookup(map[kernel.UUID]decimal.Decimal{product: decimal.Zero}),
		)

		require.NoError(t, err)
		assert.True(t, pricing.Subtotal.IsZero())
		assert.True(t, pricing.ShippingCosts.Equal(defaultShipping))
	})
}
