package kernel

import (
	"fmt"

	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// ErrQuantityIsNotConstructed is returned when attempting to use an improperly
// initialized Quantity. Quantities must be created via the NewQuantity constructor.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity constructor")

// Quantity represents how many units of an item an order line carries.
// It is an immutable value object; the zero value is invalid.
type Quantity struct {
	value         int
	isConstructed bool
}

// NewQuantity creates a Quantity. The value must be greater than zero.
func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", value))
	}

	return Quantity{value: value, isConstructed: true}, nil
}

// Value returns the unit count.
func (q Quantity) Value() int {
	return q.value
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// Validate checks that the Quantity was created through NewQuantity.
// Returns ErrQuantityIsNotConstructed for the zero value.
func (q Quantity) Validate() error {
	if !q.isConstructed {
		return ErrQuantityIsNotConstructed
	}
	return nil
}
