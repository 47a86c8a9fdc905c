package commands

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrOpenDraftCommandIsNotConstructed = errors.New(
	"OpenDraftCommand must be created via NewOpenDraftCommand constructor",
)

// OpenDraftCommand represents a waiter's request to open a comanda for a
// room or an external customer. If the origin already has an active Draft,
// the handler returns that draft instead of creating a second one.
//
// Example:
//
//	origin, _ := order.NewRoomOrigin(12)
//	cmd, err := NewOpenDraftCommand(origin, waiterID)
//	if err != nil {
//	    return fmt.Errorf("invalid draft request: %w", err)
//	}
//
//	handler := NewOpenDraftCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type OpenDraftCommand struct { //nolint:recvcheck //using for validation
	origin    order.Origin
	createdBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenDraftCommand creates a command to open a draft comanda.
// Validates that the origin and the requesting staff identity are valid.
func NewOpenDraftCommand(origin order.Origin, createdBy kernel.UUID) (OpenDraftCommand, error) {
	cmd := OpenDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrigin(origin),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return OpenDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDraftCommand) Validate() error {
	return c.guard.Validate(ErrOpenDraftCommandIsNotConstructed)
}

// Origin returns the room or customer the comanda is for.
func (c OpenDraftCommand) Origin() order.Origin {
	return c.origin
}

// CreatedBy returns the identity of the waiter opening the draft.
func (c OpenDraftCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *OpenDraftCommand) setOrigin(origin order.Origin) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *OpenDraftCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}
