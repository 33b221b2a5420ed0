package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/services"
	"orders/internal/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	OrderSummariesHandler interface {
		Handle(ctx context.Context, query queries.GetOrderSummariesQuery) ([]queries.OrderSummary, error)
	}
	OrderDetailHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailQuery) (*queries.OrderDetail, error)
	}
	MonthlyProfitsHandler interface {
		Handle(ctx context.Context, query queries.GetMonthlyProfitsQuery) ([]services.MonthlyProfit, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (bool, error)
	}
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It validates requests and delegates to the order use cases.
type Server struct {
	// Command handlers
	createOrderHandler       CreateOrderHandler
	updateOrderStatusHandler UpdateOrderStatusHandler

	// Query handlers
	getOrderSummariesHandler OrderSummariesHandler
	getOrderDetailHandler    OrderDetailHandler
	getMonthlyProfitsHandler MonthlyProfitsHandler

	validator *RequestValidator
	metrics   *metrics.OrderMetrics
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	updateOrderStatusHandler UpdateOrderStatusHandler,
	getOrderSummariesHandler OrderSummariesHandler,
	getOrderDetailHandler OrderDetailHandler,
	getMonthlyProfitsHandler MonthlyProfitsHandler,
	validator *RequestValidator,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderSummariesHandler: getOrderSummariesHandler,
		getOrderDetailHandler:    getOrderDetailHandler,
		getMonthlyProfitsHandler: getMonthlyProfitsHandler,
		validator:                validator,
		metrics:                  orderMetrics,
		logger:                   logger.With("component", "http_server"),
	}
}

// GetOrders handles GET /api/v1/orders - lists order summaries, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	summaries, err := s.getOrderSummariesHandler.Handle(ctx.Request().Context(), queries.NewGetOrderSummariesQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve orders", err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// GetOrderById handles GET /api/v1/orders/{orderId} - returns one priced order.
func (s *Server) GetOrderById(ctx echo.Context, orderId uuid.UUID) error {
	query, err := queries.NewGetOrderDetailQuery(kernel.UUIDFromGoogle(orderId))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve order", err)
	}
	if detail == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Order with ID '%s' was not found.", orderId),
		})
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// GetOrdersByStatusName handles GET /api/v1/orders/status/{statusName}.
func (s *Server) GetOrdersByStatusName(ctx echo.Context, statusName string) error {
	if done, err := s.validate(ctx, GetOrdersByStatusNameRequest{StatusName: statusName}); done {
		return err
	}

	query, err := queries.NewGetOrderSummariesByStatusNameQuery(statusName)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status name: " + err.Error(),
		})
	}

	summaries, err := s.getOrderSummariesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve orders", err)
	}
	if len(summaries) == 0 {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("No orders found with status '%s'.", statusName),
		})
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status/{newStatus}.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId uuid.UUID, newStatus string) error {
	if done, err := s.validate(ctx, UpdateOrderStatusRequest{OrderId: orderId, NewStatus: newStatus}); done {
		return err
	}

	orderID := kernel.UUIDFromGoogle(orderId)
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.metrics.RecordStatusUpdate(metrics.UpdateResultFailed)
		return s.internalError(ctx, "Failed to update order status", err)
	}
	if !updated {
		s.metrics.RecordStatusUpdate(metrics.UpdateResultRejected)
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Failed to update status to '%s'.", newStatus),
		})
	}
	s.metrics.RecordStatusUpdate(metrics.UpdateResultApplied)

	return s.respondWithDetail(ctx, http.StatusOK, orderID)
}

// CreateOrder handles POST /api/v1/orders - records a new order and returns it priced.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if done, err := s.validate(ctx, request); done {
		return err
	}

	items := make([]commands.CreateOrderItem, len(request.Items))
	for i, item := range request.Items {
		items[i] = commands.CreateOrderItem{
			ProductID: kernel.UUIDFromGoogle(item.ProductId),
			ServiceID: kernel.UUIDFromGoogle(item.ServiceId),
			Quantity:  item.Quantity,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.UUIDFromGoogle(request.ResellerId),
		kernel.UUIDFromGoogle(request.CustomerId),
		kernel.UUIDFromGoogle(request.StatusId),
		items,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to create order", err)
	}
	s.metrics.RecordOrderCreated()

	return s.respondWithDetail(ctx, http.StatusCreated, orderID)
}

// GetMonthlyProfits handles GET /api/v1/orders/monthly-profits.
func (s *Server) GetMonthlyProfits(ctx echo.Context) error {
	profits, err := s.getMonthlyProfitsHandler.Handle(ctx.Request().Context(), queries.NewGetMonthlyProfitsQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to calculate monthly profits", err)
	}

	return ctx.JSON(http.StatusOK, toMonthlyProfits(profits))
}

// validate reports done when the response has already been written.
func (s *Server) validate(ctx echo.Context, request Request) (bool, error) {
	failures, err := s.validator.Validate(ctx.Request().Context(), request)
	if err != nil {
		return true, s.internalError(ctx, "Failed to validate request", err)
	}
	if failures == nil {
		return false, nil
	}

	s.metrics.RecordValidationFailure(request.Kind().String())
	return true, validationProblem(ctx, failures)
}

func (s *Server) respondWithDetail(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve order", err)
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve order", err)
	}
	if detail == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Order with ID '%s' was not found.", orderID),
		})
	}

	return ctx.JSON(status, toOrderDetail(detail))
}

func (s *Server) internalError(ctx echo.Context, message string, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), message,
		"method", ctx.Request().Method,
		"path", ctx.Request().URL.Path,
		"error", err,
	)

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
