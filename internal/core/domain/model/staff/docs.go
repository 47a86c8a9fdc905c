// Package staff provides domain entities and business logic for staff
// account management in the restaurant system. It implements the Staff
// aggregate root with credential handling and role-based access rules.
//
// The package includes:
//   - Staff: The aggregate root that manages account identity, credentials, and activation
//   - Role: An enum that gates access to the waiter, kitchen, and management surfaces
//
// Key business rules:
//   - Accounts must have a valid unique identifier, username, display name, and role
//   - Passwords are bcrypt-hashed at construction; the plain text is never retained
//   - Accounts are deactivated rather than deleted so comanda authorship stays intact
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package staff
