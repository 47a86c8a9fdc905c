package queries

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

// GetCustomersQuery requests all registered walk-in customers.
//
//nolint:recvcheck //using for validation
type GetCustomersQuery struct {
	guard.ConstructorGuard
}

func NewGetCustomersQuery() (GetCustomersQuery, error) {
	return GetCustomersQuery{
		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomersQuery) Validate() error {
	return q.ConstructorGuard.Validate(errs.NewValueIsRequiredError("GetCustomersQuery"))
}

// GetCustomersQueryResponse is one registered walk-in customer.
type GetCustomersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	CreatedAt time.Time
}
