package commands_test

import (
	"testing"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()

	item, err := commands.NewLineItem(productID, 3)
	require.NoError(t, err)
	require.NoError(t, item.Validate())
	assert.True(t, item.ProductID().IsEqual(productID))
	assert.Equal(t, 3, item.Quantity())
}

func TestNewLineItem_InvalidQuantity(t *testing.T) {
	_, err := commands.NewLineItem(kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

	_, err = commands.NewLineItem(kernel.NewUUID(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewLineItem_InvalidProductID(t *testing.T) {
	var invalidID kernel.UUID
	_, err := commands.NewLineItem(invalidID, 1)
	require.Error(t, err)
}

func TestLineItem_Validate(t *testing.T) {
	var item commands.LineItem
	require.Error(t, item.Validate())
}
