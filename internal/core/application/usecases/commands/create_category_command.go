package commands

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a management request to add a menu category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a menu category.
func NewCreateCategoryCommand(categoryID kernel.UUID, name, description string) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategoryID(categoryID),
		cmd.setName(name),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the new category's identifier.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}

// Description returns the category description, possibly empty.
func (c CreateCategoryCommand) Description() string {
	return c.description
}

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateCategoryCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
