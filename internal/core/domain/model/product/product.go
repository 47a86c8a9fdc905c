package product

import (
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a menu catalog entry. Its price is the current list price in
// whole pesos; order lines capture it at order time and never look back.
type Product struct {
	id          kernel.UUID
	categoryID  kernel.UUID
	name        string
	description string
	price       kernel.Price
	imageURL    string
	active      bool
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates an active catalog product.
func NewProduct(
	id kernel.UUID,
	categoryID kernel.UUID,
	name, description string,
	price kernel.Price,
	imageURL string,
	now time.Time,
) (*Product, error) {
	p := &Product{
		description:   description,
		imageURL:      imageURL,
		active:        true,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCategoryID(categoryID),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rehydrates a Product from persistence, including its
// active flag.
func RestoreProduct(
	id kernel.UUID,
	categoryID kernel.UUID,
	name, description string,
	price kernel.Price,
	imageURL string,
	active bool,
	createdAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, categoryID, name, description, price, imageURL, createdAt)
	if err != nil {
		return nil, err
	}
	p.active = active
	return p, nil
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// CategoryID returns the owning category's identifier.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current list price.
func (p *Product) Price() kernel.Price {
	return p.price
}

// ImageURL returns the product image location, possibly empty.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// IsActive reports whether the product is offered on the menu.
func (p *Product) IsActive() bool {
	return p.active
}

// CreatedAt returns the creation instant.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// ChangePrice updates the list price. The previous price is returned so the
// caller can record it in the price history. Changing to the same amount is
// rejected: a no-op change would pollute the history.
func (p *Product) ChangePrice(newPrice kernel.Price) (kernel.Price, error) {
	if err := newPrice.Validate(); err != nil {
		return kernel.Price{}, err
	}
	if p.price.IsEqual(newPrice) {
		return kernel.Price{}, errs.NewValueIsInvalidErrorWithCause("new price",
			errors.New("new price equals the current price"))
	}

	old := p.price
	p.price = newPrice
	return old, nil
}

// Deactivate removes the product from the menu without deleting it.
// Historical order lines keep their snapshots either way.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate puts the product back on the menu.
func (p *Product) Activate() {
	p.active = true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
