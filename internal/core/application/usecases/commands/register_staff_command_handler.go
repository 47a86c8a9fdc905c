package commands

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/staff"
)

// RegisterStaffCommandHandler handles staff account creation.
// New accounts get the Waiter role and start deactivated; an admin
// activates them out of band before the first login succeeds.
type RegisterStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRegisterStaffCommandHandler creates a handler for staff registration.
func NewRegisterStaffCommandHandler(uowFactory StaffUoWFactory) RegisterStaffCommandHandler {
	return RegisterStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the register staff command.
func (h *RegisterStaffCommandHandler) Handle(ctx context.Context, cmd RegisterStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := staff.NewStaff(
		cmd.StaffID(), cmd.Username(), cmd.DisplayName(), cmd.Password(), staff.RoleWaiter, time.Now().UTC())
	if err != nil {
		return err
	}
	aggregate.Deactivate()

	if err = uow.StaffRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
