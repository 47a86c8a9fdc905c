// Package product provides the menu catalog domain: categories, products,
// and the price-change records management keeps for auditing.
//
// Catalog prices only matter at line-creation time; order lines capture a
// snapshot, so nothing in this package is consulted when computing the total
// of an existing comanda.
package product

import (
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category was not created
// through the NewCategory factory method.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups related menu products for the waiter's order screen.
type Category struct {
	id          kernel.UUID
	name        string
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewCategory creates a menu category. The name is required.
func NewCategory(id kernel.UUID, name, description string, now time.Time) (*Category, error) {
	c := &Category{
		description:   description,
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

// RestoreCategory rehydrates a Category from persistence.
func RestoreCategory(id kernel.UUID, name, description string, createdAt time.Time) (*Category, error) {
	return NewCategory(id, name, description, createdAt)
}

// Validate ensures the Category was properly constructed.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the category description.
func (c *Category) Description() string {
	return c.description
}

// CreatedAt returns the creation instant.
func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	c.name = name
	return nil
}
