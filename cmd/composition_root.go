package cmd

import (
	"fmt"
	"log/slog"

	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.OrderMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.NewOrderMetrics(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderSummariesQueryHandler() queries.GetOrderSummariesQueryHandler {
	return queries.NewGetOrderSummariesQueryHandler(c.orderRepository(), c.catalogRepository())
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.orderRepository(), c.catalogRepository())
}

func (c *CompositionRoot) CreateGetMonthlyProfitsQueryHandler() queries.GetMonthlyProfitsQueryHandler {
	return queries.NewGetMonthlyProfitsQueryHandler(c.orderRepository(), c.catalogRepository())
}

func (c *CompositionRoot) CreateExistenceProbes() queries.ExistenceProbes {
	return queries.NewExistenceProbes(c.orderRepository(), c.catalogRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetOrderSummariesQueryHandler(),
		c.CreateGetOrderDetailQueryHandler(),
		c.CreateGetMonthlyProfitsQueryHandler(),
		httpin.NewRequestValidator(c.CreateExistenceProbes()),
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB from gorm: %w", err)
	}

	return httpin.NewRouter(httpin.RouterConfig{
		Server:  c.CreateHTTPServer(),
		Pinger:  sqlDB,
		Metrics: c.metrics,
		Logger:  c.logger,
	}), nil
}

func (c *CompositionRoot) orderRepository() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) catalogRepository() *catalogrepo.GormCatalogRepository {
	return catalogrepo.NewGormCatalogRepository(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
