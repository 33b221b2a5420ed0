package http

import (
	"context"
	"io"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/services"
	"orders/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
)

type MockOrderSummariesHandler struct {
	mock.Mock
}

func (m *MockOrderSummariesHandler) Handle(ctx context.Context, query queries.GetOrderSummariesQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	summaries, _ := args.Get(0).([]queries.OrderSummary)
	return summaries, args.Error(1)
}

type MockOrderDetailHandler struct {
	mock.Mock
}

func (m *MockOrderDetailHandler) Handle(ctx context.Context, query queries.GetOrderDetailQuery) (*queries.OrderDetail, error) {
	args := m.Called(ctx, query)
	detail, _ := args.Get(0).(*queries.OrderDetail)
	return detail, args.Error(1)
}

type MockMonthlyProfitsHandler struct {
	mock.Mock
}

func (m *MockMonthlyProfitsHandler) Handle(ctx context.Context, query queries.GetMonthlyProfitsQuery) ([]services.MonthlyProfit, error) {
	args := m.Called(ctx, query)
	profits, _ := args.Get(0).([]services.MonthlyProfit)
	return profits, args.Error(1)
}

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type MockUpdateOrderStatusHandler struct {
	mock.Mock
}

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}

type MockExistenceChecker struct {
	mock.Mock
}

func (m *MockExistenceChecker) StatusExists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockExistenceChecker) StatusNameExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockExistenceChecker) ProductExists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockExistenceChecker) ServiceExists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockExistenceChecker) OrderExists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type testServer struct {
	summaries *MockOrderSummariesHandler
	detail    *MockOrderDetailHandler
	profits   *MockMonthlyProfitsHandler
	create    *MockCreateOrderHandler
	update    *MockUpdateOrderStatusHandler
	checker   *MockExistenceChecker
	pinger    *MockPinger
	registry  *prometheus.Registry
	metrics   *metrics.OrderMetrics

	router *echo.Echo
}

func newTestServer() *testServer {
	ts := &testServer{
		summaries: &MockOrderSummariesHandler{},
		detail:    &MockOrderDetailHandler{},
		profits:   &MockMonthlyProfitsHandler{},
		create:    &MockCreateOrderHandler{},
		update:    &MockUpdateOrderStatusHandler{},
		checker:   &MockExistenceChecker{},
		pinger:    &MockPinger{},
		registry:  prometheus.NewRegistry(),
	}
	ts.metrics = metrics.NewOrderMetricsWithRegisterer(ts.registry)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(
		ts.create,
		ts.update,
		ts.summaries,
		ts.detail,
		ts.profits,
		NewRequestValidator(ts.checker),
		ts.metrics,
		logger,
	)
	ts.router = NewRouter(RouterConfig{
		Server:   server,
		Pinger:   ts.pinger,
		Metrics:  ts.metrics,
		Gatherer: ts.registry,
		Logger:   logger,
	})
	return ts
}

func (ts *testServer) assertExpectations(t mock.TestingT) {
	ts.summaries.AssertExpectations(t)
	ts.detail.AssertExpectations(t)
	ts.profits.AssertExpectations(t)
	ts.create.AssertExpectations(t)
	ts.update.AssertExpectations(t)
	ts.checker.AssertExpectations(t)
	ts.pinger.AssertExpectations(t)
}
