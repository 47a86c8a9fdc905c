package ports

import (
	"context"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/customer"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for external customers.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
