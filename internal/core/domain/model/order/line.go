package order

import (
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one item entry within a comanda. It always carries a denormalized
// name/price snapshot captured at creation time, plus an optional reference
// to the catalog product it was built from.
//
// The snapshot is the source of truth for money: the unit price is captured
// when the line is created and never re-resolved, so later catalog price
// changes or product deletions cannot retroactively alter historical totals.
//
// Lines belong exclusively to one comanda and are replaced wholesale while
// the comanda is in Draft; they are never edited in place.
type Line struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// productID links to the catalog product, nil when the product was
	// deleted or the line was entered free-form
	productID *kernel.UUID

	// name is the display name snapshot taken at creation
	name string

	// unitPrice is the price captured at order time, immutable thereafter
	unitPrice kernel.Price

	// quantity is the unit count (positive)
	quantity kernel.Quantity

	// notes carries free text: substitutions, allergies
	notes string

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates a Line with a captured name/price snapshot.
//
// Parameters:
//   - id: unique line identifier
//   - productID: optional catalog reference; nil for free-form lines
//   - name: display name snapshot (required)
//   - unitPrice: price captured at order time
//   - quantity: unit count
//   - notes: free text, may be empty
//
// All inputs are validated; errors are joined so the caller sees every
// violation at once.
func NewLine(
	id kernel.UUID,
	productID *kernel.UUID,
	name string,
	unitPrice kernel.Price,
	quantity kernel.Quantity,
	notes string,
) (*Line, error) {
	line := &Line{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}

	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ProductID returns the catalog reference, or nil for free-form lines.
func (l *Line) ProductID() *kernel.UUID {
	return l.productID
}

// Name returns the display name snapshot.
func (l *Line) Name() string {
	return l.name
}

// UnitPrice returns the price captured at order time.
func (l *Line) UnitPrice() kernel.Price {
	return l.unitPrice
}

// Quantity returns the unit count.
func (l *Line) Quantity() kernel.Quantity {
	return l.quantity
}

// Notes returns the free-text notes.
func (l *Line) Notes() string {
	return l.notes
}

// Subtotal returns quantity × unit price in whole pesos.
func (l *Line) Subtotal() int {
	return l.quantity.Value() * l.unitPrice.Amount()
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setProductID(productID *kernel.UUID) error {
	if productID == nil {
		return nil
	}
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line name")
	}
	l.name = name
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	l.quantity = quantity
	return nil
}
