package order

import (
	"fmt"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

// ErrOriginIsNotConstructed is returned when attempting to use an improperly
// initialized Origin. Origins must be created via NewRoomOrigin or NewCustomerOrigin.
var ErrOriginIsNotConstructed = errs.NewValueIsRequiredError(
	"origin must be created via NewRoomOrigin or NewCustomerOrigin constructors")

// Origin identifies where a comanda comes from: exactly one of a hotel room
// number or a registered walk-in customer. Never both, never neither.
//
// Origin is an immutable value object. The zero value is invalid and fails
// validation; use the constructors to create instances.
//
// Example:
//
//	origin, err := order.NewRoomOrigin(12)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(origin) // Room 12
type Origin struct { //nolint:recvcheck //using for validation
	room       *int
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRoomOrigin creates an Origin for a room-service comanda.
// The room number must be a positive integer.
func NewRoomOrigin(room int) (Origin, error) {
	if room <= 0 {
		return Origin{}, errs.NewValueIsInvalidErrorWithCause("room number",
			fmt.Errorf("%d is not greater than 0", room))
	}

	return Origin{
		room:  &room,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewCustomerOrigin creates an Origin for a walk-in customer comanda.
// The customer ID must be a valid UUID.
func NewCustomerOrigin(customerID kernel.UUID) (Origin, error) {
	if err := customerID.Validate(); err != nil {
		return Origin{}, err
	}

	return Origin{
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Room returns the room number, or nil for customer-origin comandas.
func (o Origin) Room() *int {
	return o.room
}

// CustomerID returns the customer reference, or nil for room-origin comandas.
func (o Origin) CustomerID() *kernel.UUID {
	return o.customerID
}

// IsRoom reports whether the comanda originates from a room.
func (o Origin) IsRoom() bool {
	return o.room != nil
}

// IsEqual compares two origins for equality: same kind and same value.
func (o Origin) IsEqual(other Origin) bool {
	if o.room != nil && other.room != nil {
		return *o.room == *other.room
	}
	if o.customerID != nil && other.customerID != nil {
		return o.customerID.IsEqual(*other.customerID)
	}
	return false
}

// String returns a display label such as "Room 12" or "Customer <id>".
func (o Origin) String() string {
	if o.room != nil {
		return fmt.Sprintf("Room %d", *o.room)
	}
	if o.customerID != nil {
		return fmt.Sprintf("Customer %s", o.customerID.String())
	}
	return "Unknown"
}

// Validate checks the exactly-one invariant and proper construction.
// Returns ErrOriginIsNotConstructed for the zero value, or a
// ValueIsInvalidError when both or neither origin kinds are set.
func (o Origin) Validate() error {
	if err := o.guard.Validate(ErrOriginIsNotConstructed); err != nil {
		return err
	}

	if o.room != nil && o.customerID != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin is invalid",
			fmt.Errorf("room and customer origins are mutually exclusive"))
	}
	if o.room == nil && o.customerID == nil {
		return errs.NewValueIsInvalidErrorWithCause("origin is invalid",
			fmt.Errorf("either a room number or a customer reference is required"))
	}

	return nil
}
