// Package ports defines repository and outbound interfaces for the comanda
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
)

// ErrDraftAlreadyOpen is returned by OrderRepository.Add when another Draft
// comanda already exists for the same origin. Callers losing this race
// fetch the winning draft instead of failing the request.
var ErrDraftAlreadyOpen = errors.New("an active draft already exists for this origin")

// OrderRepository defines the persistence contract for comanda aggregates.
// Provides methods for storing, retrieving, and querying comandas based on
// their origin and lifecycle status.
type OrderRepository interface {
	// Add persists a new comanda aggregate to storage, including its lines.
	// The comanda must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing comanda aggregate.
	// Lines are replaced wholesale: the stored set always mirrors the
	// aggregate's current set after Update returns.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a comanda aggregate by its unique identifier.
	// Returns the complete comanda with all of its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveDraftByRoom retrieves the single Draft comanda open for the
	// given room. At most one Draft exists per room at a time; when none
	// exists, (nil, nil) is returned.
	GetActiveDraftByRoom(ctx context.Context, room int) (*order.Order, error)

	// GetActiveDraftByCustomer retrieves the single Draft comanda open for
	// the given customer. At most one Draft exists per customer; when none
	// exists, (nil, nil) is returned.
	GetActiveDraftByCustomer(ctx context.Context, customerID kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all comandas in the given status, ordered by
	// submission time ascending so the kitchen sees the oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// UpdateStatus atomically moves a comanda from one status to another.
	// The write only applies when the stored status still equals from;
	// applied reports whether the row was won. Concurrent callers racing
	// over the same transition see exactly one applied=true.
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status, at time.Time) (applied bool, err error)

	// DeleteStaleDrafts removes Draft comandas last touched before the
	// cutoff, together with their lines. Returns the number removed.
	DeleteStaleDrafts(ctx context.Context, cutoff time.Time) (int64, error)
}
