package queries

import (
	"testing"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewGetOrderQuery_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := NewGetOrderQuery(orderID)
	require.NoError(t, err)

	assert.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func Test_NewGetOrderQuery_RequiresID(t *testing.T) {
	_, err := NewGetOrderQuery(kernel.UUID{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_GetOrderQuery_ZeroValueFailsValidation(t *testing.T) {
	assert.ErrorIs(t, GetOrderQuery{}.Validate(), errs.ErrValueIsRequired)
	assert.ErrorIs(t, GetKitchenOrdersQuery{}.Validate(), errs.ErrValueIsRequired)
	assert.ErrorIs(t, GetMenuQuery{}.Validate(), errs.ErrValueIsRequired)
	assert.ErrorIs(t, GetCustomersQuery{}.Validate(), errs.ErrValueIsRequired)
	assert.ErrorIs(t, GetPriceHistoryQuery{}.Validate(), errs.ErrValueIsRequired)
}
