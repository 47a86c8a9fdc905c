package commands

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrVoidOrderCommandIsNotConstructed = errors.New(
	"VoidOrderCommand must be created via NewVoidOrderCommand constructor",
)

// VoidOrderCommand represents a kitchen request to cancel a Sent comanda.
// Void is terminal; there is no un-void.
type VoidOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVoidOrderCommand creates a command to void a comanda.
func NewVoidOrderCommand(orderID kernel.UUID) (VoidOrderCommand, error) {
	cmd := VoidOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return VoidOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VoidOrderCommand) Validate() error {
	return c.guard.Validate(ErrVoidOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the comanda to void.
func (c VoidOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *VoidOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
