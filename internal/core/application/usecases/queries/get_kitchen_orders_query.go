// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read the store directly with raw SQL and return flat
// response models; they never load or mutate domain aggregates.
package queries

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

// GetKitchenOrdersQuery retrieves the kitchen's working queue: all Sent
// comandas, oldest first, so the kitchen prepares them in arrival order.
//
// This read is authoritative. The push notification sent on submit is a
// pure optimization; the kitchen can always poll this query instead.
//
//nolint:recvcheck //using for validation
type GetKitchenOrdersQuery struct {
	guard.ConstructorGuard
}

// NewGetKitchenOrdersQuery creates a query for the kitchen queue.
func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{ConstructorGuard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenOrdersQuery) Validate() error {
	return q.ConstructorGuard.Validate(errs.NewValueIsRequiredError("GetKitchenOrdersQuery"))
}

// KitchenOrderLineResponse is one line as the kitchen display shows it.
type KitchenOrderLineResponse struct {
	Name     string
	Quantity int
	Notes    string
}

// GetKitchenOrdersQueryResponse represents one queued comanda.
// ElapsedSeconds is computed at read time from the creation instant; it is
// never stored.
type GetKitchenOrdersQueryResponse struct {
	ID             kernel.UUID
	Room           *int
	CustomerID     *kernel.UUID
	KitchenNotes   string
	CreatedAt      time.Time
	ElapsedSeconds int64
	Lines          []KitchenOrderLineResponse
}
