package queries

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

const (
	GroupByDay  = "day"
	GroupByWeek = "week"
)

// GetSalesReportQuery requests revenue totals over a time range,
// bucketed by day or by week.
//
//nolint:recvcheck //using for validation
type GetSalesReportQuery struct {
	guard.ConstructorGuard

	from    time.Time
	to      time.Time
	groupBy string
}

func NewGetSalesReportQuery(from time.Time, to time.Time, groupBy string) (GetSalesReportQuery, error) {
	if from.IsZero() {
		return GetSalesReportQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetSalesReportQuery{}, errs.NewValueIsRequiredError("to")
	}
	if !to.After(from) {
		return GetSalesReportQuery{}, errs.NewValueIsInvalidError("to")
	}
	if groupBy != GroupByDay && groupBy != GroupByWeek {
		return GetSalesReportQuery{}, errs.NewValueIsInvalidError("groupBy")
	}

	return GetSalesReportQuery{
		ConstructorGuard: guard.NewConstructorGuard(),
		from:             from,
		to:               to,
		groupBy:          groupBy,
	}, nil
}

func (q GetSalesReportQuery) From() time.Time {
	return q.from
}

func (q GetSalesReportQuery) To() time.Time {
	return q.to
}

func (q GetSalesReportQuery) GroupBy() string {
	return q.groupBy
}

func (q GetSalesReportQuery) Validate() error {
	return q.ConstructorGuard.Validate(errs.NewValueIsRequiredError("GetSalesReportQuery"))
}

// GetSalesReportQueryResponse is one revenue bucket of the report.
type GetSalesReportQueryResponse struct {
	PeriodStart time.Time
	OrdersCount int
	Revenue     int
}
