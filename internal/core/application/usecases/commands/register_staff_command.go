package commands

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrRegisterStaffCommandIsNotConstructed = errors.New(
	"RegisterStaffCommand must be created via NewRegisterStaffCommand constructor",
)

// RegisterStaffCommand represents a request to create a staff account.
// Password strength is checked by the Staff aggregate, which also hashes
// it; the command only carries the plain text to the handler.
type RegisterStaffCommand struct { //nolint:recvcheck //using for validation
	staffID     kernel.UUID
	username    string
	displayName string
	password    string

	guard guard.ConstructorGuard
}

// NewRegisterStaffCommand creates a command to register a staff account.
func NewRegisterStaffCommand(staffID kernel.UUID, username, displayName, password string) (RegisterStaffCommand, error) {
	cmd := RegisterStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setUsername(username),
		cmd.setDisplayName(displayName),
		cmd.setPassword(password),
	); err != nil {
		return RegisterStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterStaffCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStaffCommandIsNotConstructed)
}

// StaffID returns the new account's identifier.
func (c RegisterStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Username returns the login name.
func (c RegisterStaffCommand) Username() string {
	return c.username
}

// DisplayName returns the name shown on comandas.
func (c RegisterStaffCommand) DisplayName() string {
	return c.displayName
}

// Password returns the plain password to be hashed by the aggregate.
func (c RegisterStaffCommand) Password() string {
	return c.password
}

func (c *RegisterStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *RegisterStaffCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *RegisterStaffCommand) setDisplayName(displayName string) error {
	if displayName == "" {
		return errs.NewValueIsRequiredError("displayName")
	}

	c.displayName = displayName
	return nil
}

func (c *RegisterStaffCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
