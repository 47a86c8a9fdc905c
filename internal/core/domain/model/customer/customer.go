// Package customer provides the external customer entity used for walk-in
// comandas that are not tied to a room.
package customer

import (
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a registered walk-in patron. A customer can hold at most one
// Draft comanda at a time, same as a room.
type Customer struct {
	id        kernel.UUID
	name      string
	createdAt time.Time

	isConstructed bool
}

// NewCustomer creates a customer. The name is required.
func NewCustomer(id kernel.UUID, name string, now time.Time) (*Customer, error) {
	c := &Customer{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rehydrates a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name string, createdAt time.Time) (*Customer, error) {
	return NewCustomer(id, name, createdAt)
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// CreatedAt returns the registration instant.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}
