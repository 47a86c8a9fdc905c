package productrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/adapters/out/postgres/productrepo"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/product"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&productrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&productrepo.PriceChangeDTO{},
	))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE categories, products, price_changes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddProduct_AndGet_RoundTrip() {
	ctx := context.Background()

	category := suite.newCategory("Platos principales")
	suite.Require().NoError(suite.repository.AddCategory(ctx, category))

	item := suite.newProduct(category.ID(), "Bife de chorizo", 9800)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	retrieved, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(item.ID()))
	suite.True(retrieved.CategoryID().IsEqual(category.ID()))
	suite.Equal("Bife de chorizo", retrieved.Name())
	suite.Equal(9800, retrieved.Price().Amount())
	suite.True(retrieved.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddCategory_DuplicateName_FailsValidation() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddCategory(ctx, suite.newCategory("Postres")))

	err := suite.repository.AddCategory(ctx, suite.newCategory("Postres"))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsPriceChangeWithHistory() {
	ctx := context.Background()

	category := suite.newCategory("Bebidas")
	suite.Require().NoError(suite.repository.AddCategory(ctx, category))

	item := suite.newProduct(category.ID(), "Limonada", 1500)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	newPrice, err := kernel.NewPrice(1800)
	suite.Require().NoError(err)
	oldPrice, err := item.ChangePrice(newPrice)
	suite.Require().NoError(err)

	change, err := product.NewPriceChange(
		kernel.NewUUID(), item.ID(), oldPrice, newPrice, "ajuste de temporada",
		kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, item))
	suite.Require().NoError(suite.repository.AddPriceChange(ctx, change))

	retrieved, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(1800, retrieved.Price().Amount())

	var historyCount int64
	suite.Require().NoError(
		suite.db.Model(&productrepo.PriceChangeDTO{}).Where("product_id = ?", item.ID().Bytes()).
			Count(&historyCount).Error)
	suite.Equal(int64(1), historyCount)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsDeactivation() {
	ctx := context.Background()

	category := suite.newCategory("Entradas")
	suite.Require().NoError(suite.repository.AddCategory(ctx, category))

	item := suite.newProduct(category.ID(), "Provoleta", 4200)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	item.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, item))

	retrieved, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) newCategory(name string) *product.Category {
	category, err := product.NewCategory(kernel.NewUUID(), name, "", time.Now().UTC())
	suite.Require().NoError(err)
	return category
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(
	categoryID kernel.UUID, name string, priceAmount int,
) *product.Product {
	price, err := kernel.NewPrice(priceAmount)
	suite.Require().NoError(err)

	item, err := product.NewProduct(
		kernel.NewUUID(), categoryID, name, "", price, "", time.Now().UTC())
	suite.Require().NoError(err)
	return item
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
