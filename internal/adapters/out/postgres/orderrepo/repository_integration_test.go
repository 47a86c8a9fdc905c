package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/adapters/out/postgres/orderrepo"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/core/ports"
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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify persistence and the draft uniqueness index.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidDraft_Success() {
	ctx := context.Background()

	draft := suite.createDraftForRoom(7)
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SecondDraftForSameRoom_ReturnsDraftAlreadyOpen() {
	ctx := context.Background()

	first := suite.createDraftForRoom(3)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createDraftForRoom(3)
	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, ports.ErrDraftAlreadyOpen)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SecondDraftForSameCustomer_ReturnsDraftAlreadyOpen() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	first := suite.createDraftForCustomer(customerID)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createDraftForCustomer(customerID)
	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, ports.ErrDraftAlreadyOpen)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SubmittedOrderDoesNotBlockNewDraft() {
	ctx := context.Background()

	submitted := suite.createDraftForRoom(5)
	suite.Require().NoError(submitted.Submit(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, submitted))

	fresh := suite.createDraftForRoom(5)
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	suite.assertOrderCount(2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsOriginAndLines() {
	ctx := context.Background()

	draft := suite.createDraftForRoom(12)
	lines := []*order.Line{
		suite.newLine("Milanesa napolitana", 5500, 2, "sin papas"),
		suite.newLine("Agua con gas", 1200, 1, ""),
	}
	suite.Require().NoError(draft.ReplaceLines(lines, time.Now().UTC()))
	suite.Require().NoError(draft.SetKitchenNotes("mesa junto a la ventana", time.Now().UTC()))

	suite.Require().NoError(suite.repository.Add(ctx, draft))

	retrieved, err := suite.repository.Get(ctx, draft.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(draft.ID()))
	suite.Require().NotNil(retrieved.Origin().Room())
	suite.Equal(12, *retrieved.Origin().Room())
	suite.Equal(order.Draft, retrieved.Status())
	suite.Equal("mesa junto a la ventana", retrieved.KitchenNotes())

	suite.Require().Len(retrieved.Lines(), 2)
	suite.Equal("Milanesa napolitana", retrieved.Lines()[0].Name())
	suite.Equal(5500, retrieved.Lines()[0].UnitPrice().Amount())
	suite.Equal(2, retrieved.Lines()[0].Quantity().Value())
	suite.Equal("sin papas", retrieved.Lines()[0].Notes())
	suite.Equal("Agua con gas", retrieved.Lines()[1].Name())
	suite.Equal(12700, retrieved.Total())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveDraftByRoom_FindsOnlyDrafts() {
	ctx := context.Background()

	submitted := suite.createDraftForRoom(9)
	suite.Require().NoError(submitted.Submit(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, submitted))

	found, err := suite.repository.GetActiveDraftByRoom(ctx, 9)
	suite.Require().NoError(err)
	suite.Nil(found)

	draft := suite.createDraftForRoom(9)
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	found, err = suite.repository.GetActiveDraftByRoom(ctx, 9)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.True(found.ID().IsEqual(draft.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveDraftByCustomer_FindsDraft() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	found, err := suite.repository.GetActiveDraftByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Nil(found)

	draft := suite.createDraftForCustomer(customerID)
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	found, err = suite.repository.GetActiveDraftByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.True(found.ID().IsEqual(draft.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_ReturnsOldestFirst() {
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	newest := suite.createSubmittedAt(1, base)
	oldest := suite.createSubmittedAt(2, base.Add(-2*time.Hour))
	middle := suite.createSubmittedAt(3, base.Add(-1*time.Hour))

	suite.Require().NoError(suite.repository.Add(ctx, newest))
	suite.Require().NoError(suite.repository.Add(ctx, oldest))
	suite.Require().NoError(suite.repository.Add(ctx, middle))

	draft := suite.createDraftForRoom(4)
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	sent, err := suite.repository.GetAllInStatus(ctx, order.Sent)
	suite.Require().NoError(err)

	suite.Require().Len(sent, 3)
	suite.True(sent[0].ID().IsEqual(oldest.ID()))
	suite.True(sent[1].ID().IsEqual(middle.ID()))
	suite.True(sent[2].ID().IsEqual(newest.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_AppliesExactlyOnce() {
	ctx := context.Background()

	submitted := suite.createDraftForRoom(6)
	suite.Require().NoError(submitted.Submit(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, submitted))

	now := time.Now().UTC().Truncate(time.Microsecond)

	applied, err := suite.repository.UpdateStatus(ctx, submitted.ID(), order.Sent, order.Ready, now)
	suite.Require().NoError(err)
	suite.True(applied)

	// the comanda is Ready now, so a concurrent void must lose
	applied, err = suite.repository.UpdateStatus(ctx, submitted.ID(), order.Sent, order.Void, now)
	suite.Require().NoError(err)
	suite.False(applied)

	retrieved, err := suite.repository.Get(ctx, submitted.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, retrieved.Status())
	suite.Require().NotNil(retrieved.ReadyAt())
	suite.WithinDuration(now, *retrieved.ReadyAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_MissingOrder_NotApplied() {
	applied, err := suite.repository.UpdateStatus(
		context.Background(), kernel.NewUUID(), order.Sent, order.Ready, time.Now().UTC())
	suite.Require().NoError(err)
	suite.False(applied)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLinesWholesale() {
	ctx := context.Background()

	draft := suite.createDraftForRoom(2)
	suite.Require().NoError(draft.ReplaceLines(
		[]*order.Line{suite.newLine("Empanada de carne", 900, 6, "")}, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	suite.Require().NoError(draft.ReplaceLines([]*order.Line{
		suite.newLine("Empanada de carne", 900, 3, ""),
		suite.newLine("Locro", 4800, 1, "bien caliente"),
	}, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, draft))

	retrieved, err := suite.repository.Get(ctx, draft.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Lines(), 2)
	suite.Equal(3, retrieved.Lines()[0].Quantity().Value())
	suite.Equal("Locro", retrieved.Lines()[1].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.createDraftForRoom(8))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AfterConcurrentSubmit_KeepsSentStateAndLines() {
	ctx := context.Background()

	draft := suite.createDraftForRoom(9)
	suite.Require().NoError(draft.ReplaceLines(
		[]*order.Line{suite.newLine("Milanesa napolitana", 5200, 1, "")}, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	// another session submits between this session's load and its write
	stale, err := suite.repository.Get(ctx, draft.ID())
	suite.Require().NoError(err)

	applied, err := suite.repository.UpdateStatus(ctx, draft.ID(), order.Draft, order.Sent, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().True(applied)

	suite.Require().NoError(stale.ReplaceLines(
		[]*order.Line{suite.newLine("Flan casero", 1800, 4, "")}, time.Now().UTC()))
	err = suite.repository.Update(ctx, stale)
	suite.Require().ErrorIs(err, errs.ErrInvalidState)

	retrieved, err := suite.repository.Get(ctx, draft.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Sent, retrieved.Status())
	suite.Require().Len(retrieved.Lines(), 1)
	suite.Equal("Milanesa napolitana", retrieved.Lines()[0].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteStaleDrafts_RemovesOnlyStaleDrafts() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	stale, err := order.NewOrder(kernel.NewUUID(), suite.roomOrigin(1), nil, now.Add(-12*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	fresh, err := order.NewOrder(kernel.NewUUID(), suite.roomOrigin(2), nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	oldButSent, err := order.NewOrder(kernel.NewUUID(), suite.roomOrigin(3), nil, now.Add(-12*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(oldButSent.Submit(now.Add(-12 * time.Hour)))
	suite.Require().NoError(suite.repository.Add(ctx, oldButSent))

	removed, err := suite.repository.DeleteStaleDrafts(ctx, now.Add(-6*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.repository.Get(ctx, stale.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	_, err = suite.repository.Get(ctx, fresh.ID())
	suite.Require().NoError(err)
	_, err = suite.repository.Get(ctx, oldButSent.ID())
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) roomOrigin(room int) order.Origin {
	origin, err := order.NewRoomOrigin(room)
	suite.Require().NoError(err)
	return origin
}

func (suite *OrderRepositoryIntegrationTestSuite) createDraftForRoom(room int) *order.Order {
	draft, err := order.NewOrder(kernel.NewUUID(), suite.roomOrigin(room), nil, time.Now().UTC())
	suite.Require().NoError(err)
	return draft
}

func (suite *OrderRepositoryIntegrationTestSuite) createDraftForCustomer(customerID kernel.UUID) *order.Order {
	origin, err := order.NewCustomerOrigin(customerID)
	suite.Require().NoError(err)

	draft, err := order.NewOrder(kernel.NewUUID(), origin, nil, time.Now().UTC())
	suite.Require().NoError(err)
	return draft
}

func (suite *OrderRepositoryIntegrationTestSuite) createSubmittedAt(room int, createdAt time.Time) *order.Order {
	submitted, err := order.NewOrder(kernel.NewUUID(), suite.roomOrigin(room), nil, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(submitted.Submit(createdAt))
	return submitted
}

func (suite *OrderRepositoryIntegrationTestSuite) newLine(
	name string, unitPrice int, quantity int, notes string,
) *order.Line {
	price, err := kernel.NewPrice(unitPrice)
	suite.Require().NoError(err)
	qty, err := kernel.NewQuantity(quantity)
	suite.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), nil, name, price, qty, notes)
	suite.Require().NoError(err)
	return line
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
