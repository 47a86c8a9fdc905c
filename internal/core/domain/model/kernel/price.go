package kernel

import (
	"fmt"

	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via the NewPrice constructor.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice constructor")

// Price represents a money amount in whole pesos. The catalog stores prices
// as positive integers and order lines capture them unchanged, so no
// fractional arithmetic ever happens in money paths.
//
// Price is an immutable value object. The zero value is invalid and fails
// validation; use NewPrice to create instances.
//
// Example:
//
//	price, err := kernel.NewPrice(1200)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price.Amount()) // 1200
type Price struct {
	amount        int
	isConstructed bool
}

// NewPrice creates a Price from a whole-peso amount.
// The amount must be greater than zero.
func NewPrice(amount int) (Price, error) {
	if amount <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	return Price{amount: amount, isConstructed: true}, nil
}

// Amount returns the price in whole pesos.
func (p Price) Amount() int {
	return p.amount
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// Validate checks that the Price was created through NewPrice.
// Returns ErrPriceIsNotConstructed for the zero value.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
