package commands

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register an external
// customer, so walk-in comandas can be opened against them.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
func NewRegisterCustomerCommand(customerID kernel.UUID, name string) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the new customer's identifier.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
