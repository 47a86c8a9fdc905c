package commands_test

import (
	"testing"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/application/usecases/commands"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/product"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), "Bebidas", "frias y calientes")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("AddCategory", ctx, mock.AnythingOfType("*product.Category")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCategoryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestNewCreateCategoryCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	category, err := product.NewCategory(kernel.NewUUID(), "Bebidas", "", time.Now().UTC())
	require.NoError(t, err)
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), category.ID(), "Cola", "lata 350cc", 1200, "")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetCategory", ctx, category.ID()).Return(category, nil).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := productRepo.Calls[1].Arguments[1].(*product.Product)
	assert.Equal(t, "Cola", added.Name())
	assert.Equal(t, 1200, added.Price().Amount())
	assert.True(t, added.IsActive())
}

func TestCreateProductCommandHandler_Handle_UnknownCategory(t *testing.T) {
	ctx := t.Context()
	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), categoryID, "Cola", "", 1200, "")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetCategory", ctx, categoryID).
			Return(nil, errs.NewObjectNotFoundError("categoryID", categoryID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	productRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewCreateProductCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), kernel.NewUUID(), "", "", 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
