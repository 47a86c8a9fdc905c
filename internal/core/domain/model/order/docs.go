// Package order provides domain entities and business logic for comanda
// management in the restaurant system. It implements the Order aggregate root
// with lifecycle management and state transitions across the waiter/kitchen
// boundary.
//
// The package includes:
//   - Order: The aggregate root that manages comanda identity, origin, lines, and lifecycle
//   - Status: A state machine that enforces valid comanda status transitions
//   - Origin: A value object holding exactly one of room number or customer reference
//   - Line: An item entry with a name/price snapshot captured at order time
//
// Key business rules:
//   - Comandas must have a valid unique identifier and exactly one origin
//   - Status follows a defined workflow: Draft -> Sent -> {Ready | Void}
//   - Lines are replaced wholesale and only while the comanda is Draft
//   - Ready and Void are terminal; no transition leaves them
//   - The comanda total is always derived from its lines, never stored
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
