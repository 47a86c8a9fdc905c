package queries

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

// GetPriceHistoryQuery requests the recorded price changes of one product.
//
//nolint:recvcheck //using for validation
type GetPriceHistoryQuery struct {
	guard.ConstructorGuard

	productID kernel.UUID
}

func NewGetPriceHistoryQuery(productID kernel.UUID) (GetPriceHistoryQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetPriceHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("productID", err)
	}

	return GetPriceHistoryQuery{
		ConstructorGuard: guard.NewConstructorGuard(),
		productID:        productID,
	}, nil
}

func (q GetPriceHistoryQuery) ProductID() kernel.UUID {
	return q.productID
}

func (q GetPriceHistoryQuery) Validate() error {
	return q.ConstructorGuard.Validate(errs.NewValueIsRequiredError("GetPriceHistoryQuery"))
}

// GetPriceHistoryQueryResponse is one recorded price change, newest first.
type GetPriceHistoryQueryResponse struct {
	ID        kernel.UUID
	OldPrice  int
	NewPrice  int
	Reason    string
	ChangedBy *kernel.UUID
	ChangedAt time.Time
}
