package ports

import (
	"context"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff accounts.
type StaffRepository interface {
	// Add persists a new staff account to storage.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Update persists changes to an existing staff account.
	Update(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetByUsername retrieves a staff account by its login name.
	// Used by the login flow before any identity is established.
	GetByUsername(ctx context.Context, username string) (*staff.Staff, error)
}
