package commands

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand represents a management request to change a
// product's list price. Every change lands in the price history with the
// staff identity that made it.
//
// Existing comanda lines are untouched: they carry the price captured when
// the line was created.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	newPrice  int
	reason    string
	changedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeProductPriceCommand creates a command to change a product price.
// Validates the product and staff identifiers and a positive price.
func NewChangeProductPriceCommand(
	productID kernel.UUID,
	newPrice int,
	reason string,
	changedBy kernel.UUID,
) (ChangeProductPriceCommand, error) {
	cmd := ChangeProductPriceCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setNewPrice(newPrice),
		cmd.setChangedBy(changedBy),
	); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to reprice.
func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

// NewPrice returns the requested price in whole pesos.
func (c ChangeProductPriceCommand) NewPrice() int {
	return c.newPrice
}

// Reason returns the free-text justification, possibly empty.
func (c ChangeProductPriceCommand) Reason() string {
	return c.reason
}

// ChangedBy returns the staff identity making the change.
func (c ChangeProductPriceCommand) ChangedBy() kernel.UUID {
	return c.changedBy
}

func (c *ChangeProductPriceCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *ChangeProductPriceCommand) setNewPrice(newPrice int) error {
	if newPrice <= 0 {
		return errs.NewValueIsOutOfRangeError("newPrice", newPrice, 1, "unbounded")
	}

	c.newPrice = newPrice
	return nil
}

func (c *ChangeProductPriceCommand) setChangedBy(changedBy kernel.UUID) error {
	if err := changedBy.Validate(); err != nil {
		return err
	}

	c.changedBy = changedBy
	return nil
}
