package queries

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

const maxTopProductsLimit = 100

// GetTopProductsQuery requests the best selling products over a time range.
//
//nolint:recvcheck //using for validation
type GetTopProductsQuery struct {
	guard.ConstructorGuard

	from  time.Time
	to    time.Time
	limit int
}

func NewGetTopProductsQuery(from time.Time, to time.Time, limit int) (GetTopProductsQuery, error) {
	if from.IsZero() {
		return GetTopProductsQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetTopProductsQuery{}, errs.NewValueIsRequiredError("to")
	}
	if !to.After(from) {
		return GetTopProductsQuery{}, errs.NewValueIsInvalidError("to")
	}
	if limit < 1 || limit > maxTopProductsLimit {
		return GetTopProductsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxTopProductsLimit)
	}

	return GetTopProductsQuery{
		ConstructorGuard: guard.NewConstructorGuard(),
		from:             from,
		to:               to,
		limit:            limit,
	}, nil
}

func (q GetTopProductsQuery) From() time.Time {
	return q.from
}

func (q GetTopProductsQuery) To() time.Time {
	return q.to
}

func (q GetTopProductsQuery) Limit() int {
	return q.limit
}

func (q GetTopProductsQuery) Validate() error {
	return q.ConstructorGuard.Validate(errs.NewValueIsRequiredError("GetTopProductsQuery"))
}

// GetTopProductsQueryResponse is one product ranked by quantity sold.
// Free-form lines are grouped by their captured name.
type GetTopProductsQueryResponse struct {
	Name         string
	QuantitySold int
	Revenue      int
}
