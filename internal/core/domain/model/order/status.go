package order

import (
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// Status represents the lifecycle state of a comanda.
// It implements a state machine with defined transitions to ensure
// orders follow the correct waiter/kitchen workflow.
//
// State transitions:
//
//	Draft ──> Sent ──┬──> Ready
//	                 └──> Void
//
// Draft orders are editable by the waiter and invisible to the kitchen.
// Sent orders are visible to the kitchen with immutable lines.
// Ready and Void are terminal: no transition leaves them.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when a comanda is opened by a waiter.
	// Only Draft orders may have their lines replaced.
	Draft

	// Sent indicates the waiter submitted the comanda to the kitchen.
	// Lines are frozen; only the kitchen advances the order from here.
	Sent

	// Ready indicates the kitchen finished preparation. Terminal.
	Ready

	// Void indicates the kitchen cancelled the comanda. Terminal.
	Void
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Draft:   "Draft",
		Sent:    "Sent",
		Ready:   "Ready",
		Void:    "Void",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft: "Draft",
		Sent:  "Sent",
		Ready: "Ready",
		Void:  "Void",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Sent, Ready, Void.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Draft), int(Void))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
// Ready and Void are permanent outcomes: there is no un-void or re-open.
func (s Status) IsTerminal() bool {
	return s == Ready || s == Void
}

// AllowsLineEdit reports whether order lines may be replaced in this status.
// Lines are editable only while the comanda is a Draft.
func (s Status) AllowsLineEdit() bool {
	return s == Draft
}

// Submit transitions the status to Sent.
//
// Valid transitions:
//   - Draft -> Sent
//
// Any other starting status fails with an InvalidStateError; in particular
// submitting twice fails because the order is already Sent.
//
// Returns:
//   - (Sent, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Submit() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStateError("submit", s.String())
	}

	return Sent, nil
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Sent -> Ready
//
// Attempting this on a Draft, Ready, or Void order fails with an
// InvalidStateError and is reported to the caller, never retried.
func (s Status) MarkReady() (Status, error) {
	if s != Sent {
		return 0, errs.NewInvalidStateError("mark ready", s.String())
	}

	return Ready, nil
}

// MarkVoid transitions the status to Void.
//
// Valid transitions:
//   - Sent -> Void
//
// MarkReady and MarkVoid are mutually exclusive terminal transitions: once
// one succeeds for an order, the other fails with an InvalidStateError.
func (s Status) MarkVoid() (Status, error) {
	if s != Sent {
		return 0, errs.NewInvalidStateError("void", s.String())
	}

	return Void, nil
}
