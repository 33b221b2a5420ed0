package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/pgtest"
	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	statuses   map[string]kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec(pgtest.Truncate).Error)

	catalogRepo := catalogrepo.NewGormCatalogRepository(suite.db)
	suite.Require().NoError(catalogRepo.EnsureStatuses(ctx, catalog.StandardStatusNames()))

	statuses, err := catalogRepo.GetStatuses(ctx)
	suite.Require().NoError(err)

	suite.statuses = make(map[string]kernel.UUID, len(statuses))
	for _, s := range statuses {
		suite.statuses[s.Name()] = s.ID()
	}

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithItems() {
	ctx := context.Background()
	testOrder := suite.createOrder(catalog.StatusCreated, time.Now().UTC(), 1, 2, 3)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.OrderItemDTO{}, 3)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	testOrder := suite.createOrder(catalog.StatusCreated, time.Now().UTC(), 1)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Add(ctx, testOrder)

	suite.Require().ErrorIs(err, orderrepo.ErrOrderAlreadyExists)
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RestoresItemsInOrder() {
	ctx := context.Background()
	createdAt := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	original := suite.createOrder(catalog.StatusInProgress, createdAt, 5, 1, 4)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	restored, err := suite.repository.Get(ctx, original.ID())

	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(original.ID()))
	suite.True(restored.ResellerID().IsEqual(original.ResellerID()))
	suite.True(restored.CustomerID().IsEqual(original.CustomerID()))
	suite.True(restored.StatusID().IsEqual(suite.statuses[catalog.StatusInProgress]))
	suite.True(restored.CreatedAt().Equal(createdAt))
	suite.Require().Equal(3, restored.ItemCount())
	for idx, item := range restored.Items() {
		suite.True(item.ID().IsEqual(original.Items()[idx].ID()))
		suite.Equal(original.Items()[idx].Quantity(), item.Quantity())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NullQuantity_RestoresAsZero() {
	ctx := context.Background()
	testOrder := suite.createOrder(catalog.StatusCreated, time.Now().UTC(), 7)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(suite.db.Exec("UPDATE order_items SET quantity = NULL").Error)

	restored, err := suite.repository.Get(ctx, testOrder.ID())

	suite.Require().NoError(err)
	suite.Equal(0, restored.Items()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	restored, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(restored)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	testOrder := suite.createOrder(catalog.StatusCreated, time.Now().UTC(), 1)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	found, err := suite.repository.Exists(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(found)

	found, err = suite.repository.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ChangesStatus() {
	ctx := context.Background()
	testOrder := suite.createOrder(catalog.StatusCreated, time.Now().UTC(), 2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(suite.statuses[catalog.StatusInProgress]))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(restored.StatusID().IsEqual(suite.statuses[catalog.StatusInProgress]))
	suite.Equal(1, restored.ItemCount())
	suite.assertCount(&orderrepo.OrderItemDTO{}, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsRecordNotFound() {
	testOrder := suite.createOrder(catalog.StatusCreated, time.Now().UTC(), 1)

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_ReturnsNewestFirst() {
	ctx := context.Background()
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	oldest := suite.createOrder(catalog.StatusCreated, base, 1)
	middle := suite.createOrder(catalog.StatusCreated, base.Add(time.Hour), 2)
	newest := suite.createOrder(catalog.StatusCreated, base.Add(2*time.Hour), 3)
	for _, o := range []*order.Order{middle, oldest, newest} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.True(orders[0].IsEqual(newest))
	suite.True(orders[1].IsEqual(middle))
	suite.True(orders[2].IsEqual(oldest))
	suite.Equal(3, orders[0].Items()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_Empty() {
	orders, err := suite.repository.List(context.Background())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListByStatusName_ReturnsOnlyMatching() {
	ctx := context.Background()
	base := time.Now().UTC()
	names := []string{
		catalog.StatusCreated,
		catalog.StatusFailed,
		catalog.StatusCreated,
		catalog.StatusFailed,
		catalog.StatusInProgress,
	}
	for idx, name := range names {
		o := suite.createOrder(name, base.Add(time.Duration(idx)*time.Minute), 1)
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	created, err := suite.repository.ListByStatusName(ctx, catalog.StatusCreated)
	suite.Require().NoError(err)
	suite.Require().Len(created, 2)
	suite.True(created[0].CreatedAt().After(created[1].CreatedAt()))
	for _, o := range created {
		suite.True(o.StatusID().IsEqual(suite.statuses[catalog.StatusCreated]))
		suite.Equal(1, o.ItemCount())
	}

	completed, err := suite.repository.ListByStatusName(ctx, catalog.StatusCompleted)
	suite.Require().NoError(err)
	suite.Empty(completed)

	lower, err := suite.repository.ListByStatusName(ctx, "created")
	suite.Require().NoError(err)
	suite.Empty(lower)
}

func (suite *OrderRepositoryIntegrationTestSuite) createOrder(statusName string, createdAt time.Time, quantities ...int) *order.Order {
	orderID := kernel.NewUUID()
	items := make([]*order.Item, 0, len(quantities))
	for _, q := range quantities {
		item, err := order.NewItem(kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(), q)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	statusID, ok := suite.statuses[statusName]
	suite.Require().True(ok, statusName)

	o, err := order.NewOrder(orderID, kernel.UUIDFromGoogle(uuid.New()), kernel.NewUUID(), statusID, createdAt, items)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
