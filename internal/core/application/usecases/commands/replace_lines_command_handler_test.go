package commands_test

import (
	"testing"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/application/usecases/commands"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/product"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogProduct(t *testing.T, name string, priceAmount int) *product.Product {
	t.Helper()

	price, err := kernel.NewPrice(priceAmount)
	require.NoError(t, err)
	p, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(), name, "", price, "", time.Now().UTC())
	require.NoError(t, err)
	return p
}

func TestReplaceLinesCommandHandler_Handle_FreeFormLines(t *testing.T) {
	ctx := t.Context()
	draft := draftOrder(t, roomOrigin(t, 12))
	lines := []commands.LineInput{
		{Name: "Cola", UnitPrice: 1200, Quantity: 2},
	}
	cmd, err := commands.NewReplaceLinesCommand(draft.ID(), lines, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, draft.ID()).Return(draft, nil).Once(),
		uow.On("ProductRepository").Return(new(MockProductRepository)).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReplaceLinesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, draft.Lines(), 1)
	assert.Equal(t, "Cola", draft.Lines()[0].Name())
	assert.Equal(t, 2400, draft.Total())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReplaceLinesCommandHandler_Handle_ProductLineSnapshotsCatalogPrice(t *testing.T) {
	ctx := t.Context()
	draft := draftOrder(t, roomOrigin(t, 12))
	menuProduct := catalogProduct(t, "Empanada de pino", 2500)
	productID := menuProduct.ID()
	lines := []commands.LineInput{
		{ProductID: &productID, Quantity: 3, Notes: "sin cebolla"},
	}
	cmd, err := commands.NewReplaceLinesCommand(draft.ID(), lines, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, draft.ID()).Return(draft, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(menuProduct, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReplaceLinesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, draft.Lines(), 1)
	line := draft.Lines()[0]
	assert.Equal(t, "Empanada de pino", line.Name())
	assert.Equal(t, 2500, line.UnitPrice().Amount())
	assert.Equal(t, 7500, draft.Total())
	assert.Equal(t, "sin cebolla", line.Notes())
}

func TestReplaceLinesCommandHandler_Handle_InactiveProductRejected(t *testing.T) {
	ctx := t.Context()
	draft := draftOrder(t, roomOrigin(t, 12))
	menuProduct := catalogProduct(t, "Empanada de pino", 2500)
	menuProduct.Deactivate()
	productID := menuProduct.ID()
	cmd, err := commands.NewReplaceLinesCommand(
		draft.ID(), []commands.LineInput{{ProductID: &productID, Quantity: 1}}, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, draft.ID()).Return(draft, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(menuProduct, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReplaceLinesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Empty(t, draft.Lines())
}

func TestReplaceLinesCommandHandler_Handle_NotDraft(t *testing.T) {
	ctx := t.Context()
	sent := sentOrder(t, roomOrigin(t, 12))
	cmd, err := commands.NewReplaceLinesCommand(
		sent.ID(), []commands.LineInput{{Name: "Cola", UnitPrice: 1200, Quantity: 1}}, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, sent.ID()).Return(sent, nil).Once(),
		uow.On("ProductRepository").Return(new(MockProductRepository)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReplaceLinesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Empty(t, sent.Lines())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReplaceLinesCommandHandler_Handle_EmptySetClearsDraft(t *testing.T) {
	ctx := t.Context()
	draft := draftOrder(t, roomOrigin(t, 12))
	price, _ := kernel.NewPrice(1200)
	quantity, _ := kernel.NewQuantity(1)
	line, err := order.NewLine(kernel.NewUUID(), nil, "Cola", price, quantity, "")
	require.NoError(t, err)
	require.NoError(t, draft.ReplaceLines([]*order.Line{line}, time.Now().UTC()))

	cmd, err := commands.NewReplaceLinesCommand(draft.ID(), nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, draft.ID()).Return(draft, nil).Once(),
		uow.On("ProductRepository").Return(new(MockProductRepository)).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReplaceLinesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, draft.Lines())
	assert.Equal(t, 0, draft.Total())
}
