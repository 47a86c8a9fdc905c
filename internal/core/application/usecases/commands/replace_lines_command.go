package commands

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrReplaceLinesCommandIsNotConstructed = errors.New(
	"ReplaceLinesCommand must be created via NewReplaceLinesCommand constructor",
)

// LineInput describes one requested comanda line. A line either references
// a catalog product, in which case the name and price snapshot are resolved
// from the catalog, or is free-form with an explicit name and unit price.
type LineInput struct {
	ProductID *kernel.UUID
	Name      string
	UnitPrice int
	Quantity  int
	Notes     string
}

// ReplaceLinesCommand represents a waiter's request to replace the whole
// line set of a Draft comanda. The submitted set is the new truth; there is
// no per-line patching.
type ReplaceLinesCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	lines        []LineInput
	kitchenNotes string

	guard guard.ConstructorGuard
}

// NewReplaceLinesCommand creates a command to replace a comanda's lines.
// Each line must have a positive quantity, and free-form lines must carry
// a name and a positive unit price. An empty set is allowed: it clears
// the draft.
func NewReplaceLinesCommand(orderID kernel.UUID, lines []LineInput, kitchenNotes string) (ReplaceLinesCommand, error) {
	cmd := ReplaceLinesCommand{
		kitchenNotes: kitchenNotes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLines(lines),
	); err != nil {
		return ReplaceLinesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceLinesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceLinesCommandIsNotConstructed)
}

// OrderID returns the identifier of the comanda whose lines are replaced.
func (c ReplaceLinesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns the requested replacement line set.
func (c ReplaceLinesCommand) Lines() []LineInput {
	return c.lines
}

// KitchenNotes returns the free-text note for the kitchen, possibly empty.
func (c ReplaceLinesCommand) KitchenNotes() string {
	return c.kitchenNotes
}

func (c *ReplaceLinesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReplaceLinesCommand) setLines(lines []LineInput) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, "unbounded")
		}
		if line.ProductID == nil {
			if line.Name == "" {
				return errs.NewValueIsRequiredError("line name")
			}
			if line.UnitPrice <= 0 {
				return errs.NewValueIsOutOfRangeError("unitPrice", line.UnitPrice, 1, "unbounded")
			}
			continue
		}
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
