package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrSendOrderCommandIsNotConstructed = errors.New(
	"SendOrderCommand must be created via NewSendOrderCommand constructor",
)

// SendOrderCommand represents a request to mark an in-process order as
// dispatched.
type SendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendOrderCommand creates a command to send an order.
func NewSendOrderCommand(orderID kernel.UUID) (SendOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SendOrderCommand{}, err
	}

	return SendOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to send.
func (c SendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
