package product

import (
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
)

// ErrPriceChangeIsNotConstructed is returned when a PriceChange was not
// created through the NewPriceChange factory method.
var ErrPriceChangeIsNotConstructed = errors.New("PriceChange must be created via NewPriceChange constructor")

// PriceChange is an immutable audit record of one product price update:
// who changed what, from which amount to which, and why.
type PriceChange struct {
	id        kernel.UUID
	productID kernel.UUID
	oldPrice  kernel.Price
	newPrice  kernel.Price
	reason    string
	changedBy kernel.UUID
	changedAt time.Time

	isConstructed bool
}

// NewPriceChange creates a price history record. The reason may be empty.
func NewPriceChange(
	id kernel.UUID,
	productID kernel.UUID,
	oldPrice, newPrice kernel.Price,
	reason string,
	changedBy kernel.UUID,
	now time.Time,
) (*PriceChange, error) {
	pc := &PriceChange{
		reason:        reason,
		changedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		oldPrice.Validate(),
		newPrice.Validate(),
		changedBy.Validate(),
	); err != nil {
		return nil, err
	}

	pc.id = id
	pc.productID = productID
	pc.oldPrice = oldPrice
	pc.newPrice = newPrice
	pc.changedBy = changedBy

	return pc, nil
}

// Validate ensures the PriceChange was properly constructed.
func (pc *PriceChange) Validate() error {
	if pc == nil || !pc.isConstructed {
		return ErrPriceChangeIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (pc *PriceChange) ID() kernel.UUID {
	return pc.id
}

// ProductID returns the changed product's identifier.
func (pc *PriceChange) ProductID() kernel.UUID {
	return pc.productID
}

// OldPrice returns the price before the change.
func (pc *PriceChange) OldPrice() kernel.Price {
	return pc.oldPrice
}

// NewPrice returns the price after the change.
func (pc *PriceChange) NewPrice() kernel.Price {
	return pc.newPrice
}

// Reason returns the free-text justification, possibly empty.
func (pc *PriceChange) Reason() string {
	return pc.reason
}

// ChangedBy returns the staff identity that made the change.
func (pc *PriceChange) ChangedBy() kernel.UUID {
	return pc.changedBy
}

// ChangedAt returns when the change happened.
func (pc *PriceChange) ChangedAt() time.Time {
	return pc.changedAt
}

// Difference returns the signed peso delta of the change.
func (pc *PriceChange) Difference() int {
	return pc.newPrice.Amount() - pc.oldPrice.Amount()
}
