package order

import (
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a comanda: a customer's requested items tracked through a
// lifecycle from Draft to a terminal outcome. It is the aggregate root that
// owns its lines and enforces every state-transition rule at the
// waiter/kitchen boundary.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid origin (room XOR customer)
//   - The total is always derived from the current lines, never stored
//   - Lines are replaced wholesale, and only while the order is Draft
//   - Status transitions follow the Draft → Sent → {Ready | Void} machine
//   - created-at is immutable; updated-at is bumped on every state or line change
//   - Can only be created through NewOrder or rehydrated through RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the comanda
	id kernel.UUID

	// origin is where the comanda comes from (room or walk-in customer)
	origin Origin

	// status is the current state in the comanda lifecycle
	status Status

	// createdBy is the staff identity that opened the comanda (nil if anonymized)
	createdBy *kernel.UUID

	// kitchenNotes is optional free text for the kitchen
	kitchenNotes string

	// lines are the item entries, owned exclusively by this comanda
	lines []*Line

	// createdAt is set once at creation and never changes
	createdAt time.Time

	// updatedAt is bumped on every state or line change
	updatedAt time.Time

	// readyAt is set when the kitchen marks the comanda Ready
	readyAt *time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder opens a new comanda in Draft status with no lines.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - origin: validated room or customer origin
//   - createdBy: staff identity opening the comanda, nil if anonymized
//   - now: creation instant, stamps both created-at and updated-at
//
// Returns the created order, or a validation error if any parameter is
// invalid. Errors are joined so the caller sees every violation at once.
func NewOrder(id kernel.UUID, origin Origin, createdBy *kernel.UUID, now time.Time) (*Order, error) {
	o := &Order{
		status:        Draft,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrigin(origin),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence without running creation
// side effects. All invariants are still validated: an invalid stored status
// or origin surfaces here instead of corrupting the domain.
func RestoreOrder(
	id kernel.UUID,
	origin Origin,
	status Status,
	createdBy *kernel.UUID,
	kitchenNotes string,
	lines []*Line,
	createdAt time.Time,
	updatedAt time.Time,
	readyAt *time.Time,
) (*Order, error) {
	o := &Order{
		kitchenNotes:  kitchenNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		readyAt:       readyAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrigin(origin),
		o.setCreatedBy(createdBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	o.lines = lines

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the comanda's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Origin returns the comanda's origin.
func (o *Order) Origin() Origin {
	return o.origin
}

// Status returns the current status of the comanda.
func (o *Order) Status() Status {
	return o.status
}

// CreatedBy returns the staff identity that opened the comanda, or nil.
func (o *Order) CreatedBy() *kernel.UUID {
	return o.createdBy
}

// KitchenNotes returns the free-text notes for the kitchen.
func (o *Order) KitchenNotes() string {
	return o.kitchenNotes
}

// Lines returns the current item entries. The returned slice is a copy;
// lines are only ever replaced through ReplaceLines.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// CreatedAt returns the immutable creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last state or line change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ReadyAt returns when the kitchen marked the comanda Ready, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// Total returns the derived comanda total: the sum of quantity × unit price
// over the current lines. It is never stored; an empty comanda totals 0.
func (o *Order) Total() int {
	total := 0
	for _, line := range o.lines {
		total += line.Subtotal()
	}
	return total
}

// ReplaceLines replaces the comanda's lines wholesale.
//
// This method enforces the following business rules:
//   - Lines are editable only while the comanda is Draft; once Sent they
//     are immutable from the waiter's side
//   - Replacement is all-or-nothing: the previous lines are discarded and
//     the supplied set becomes the comanda's lines
//
// Returns an InvalidStateError if the comanda is not Draft; the existing
// lines remain unchanged in that case.
func (o *Order) ReplaceLines(lines []*Line, now time.Time) error {
	if !o.status.AllowsLineEdit() {
		return errs.NewInvalidStateError("replace lines", o.status.String())
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	o.updatedAt = now
	return nil
}

// SetKitchenNotes updates the free-text kitchen notes.
// Notes follow the same editability rule as lines: Draft only.
func (o *Order) SetKitchenNotes(notes string, now time.Time) error {
	if !o.status.AllowsLineEdit() {
		return errs.NewInvalidStateError("set kitchen notes", o.status.String())
	}

	o.kitchenNotes = notes
	o.updatedAt = now
	return nil
}

// Submit transitions the comanda from Draft to Sent, freezing its lines and
// making it visible to the kitchen.
//
// Returns an InvalidStateError if the comanda is not Draft. Submitting an
// already-Sent comanda fails; the first submission remains authoritative.
func (o *Order) Submit(now time.Time) error {
	newStatus, err := o.status.Submit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// MarkReady transitions the comanda from Sent to Ready and records the
// ready-at instant. Ready is terminal.
//
// Returns an InvalidStateError if the comanda is not Sent.
func (o *Order) MarkReady(now time.Time) error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.readyAt = &now
	o.updatedAt = now
	return nil
}

// MarkVoid transitions the comanda from Sent to Void. Void is terminal.
//
// Returns an InvalidStateError if the comanda is not Sent; in particular a
// comanda already marked Ready cannot be voided, and vice versa.
func (o *Order) MarkVoid(now time.Time) error {
	newStatus, err := o.status.MarkVoid()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// setID validates and sets the comanda's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrigin validates and sets the comanda's origin.
// This is a private method used only during construction.
func (o *Order) setOrigin(origin Origin) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

// setCreatedBy validates and sets the owning staff identity, if any.
// This is a private method used only during construction.
func (o *Order) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy == nil {
		return nil
	}
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}
