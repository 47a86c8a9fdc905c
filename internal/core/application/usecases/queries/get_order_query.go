package queries

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

// GetOrderQuery requests a single comanda by its identifier.
//
//nolint:recvcheck //using for validation
type GetOrderQuery struct {
	guard.ConstructorGuard

	orderID kernel.UUID
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetOrderQuery{
		ConstructorGuard: guard.NewConstructorGuard(),
		orderID:          orderID,
	}, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Validate() error {
	return q.ConstructorGuard.Validate(errs.NewValueIsRequiredError("GetOrderQuery"))
}

// OrderLineResponse is one line of a comanda as stored, with its
// captured name and unit price.
type OrderLineResponse struct {
	ID        kernel.UUID
	ProductID *kernel.UUID
	Name      string
	UnitPrice int
	Quantity  int
	Notes     string
	Subtotal  int
}

// GetOrderQueryResponse is the full read model of a comanda.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	Room         *int
	CustomerID   *kernel.UUID
	Status       string
	KitchenNotes string
	Total        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ReadyAt      *time.Time
	Lines        []OrderLineResponse
}
