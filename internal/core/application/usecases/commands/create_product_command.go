package commands

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a management request to add a product to
// the menu catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	categoryID  kernel.UUID
	name        string
	description string
	price       int
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Validates identifiers, a non-empty name and a positive whole-peso price.
func NewCreateProductCommand(
	productID kernel.UUID,
	categoryID kernel.UUID,
	name, description string,
	price int,
	imageURL string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setCategoryID(categoryID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the new product's identifier.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// CategoryID returns the owning category's identifier.
func (c CreateProductCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the list price in whole pesos.
func (c CreateProductCommand) Price() int {
	return c.price
}

// ImageURL returns the product image location, possibly empty.
func (c CreateProductCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 1, "unbounded")
	}

	c.price = price
	return nil
}
