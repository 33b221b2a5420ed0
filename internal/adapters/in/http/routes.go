package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of api/openapi.yaml.
type ServerInterface interface {
	// (GET /orders)
	GetOrders(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/monthly-profits)
	GetMonthlyProfits(ctx echo.Context) error
	// (GET /orders/status/{statusName})
	GetOrdersByStatusName(ctx echo.Context, statusName string) error
	// (GET /orders/{orderId})
	GetOrderById(ctx echo.Context, orderId uuid.UUID) error
	// (PATCH /orders/{orderId}/status/{newStatus})
	UpdateOrderStatus(ctx echo.Context, orderId uuid.UUID, newStatus string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetMonthlyProfits(ctx echo.Context) error {
	return w.Handler.GetMonthlyProfits(ctx)
}

func (w *ServerInterfaceWrapper) GetOrdersByStatusName(ctx echo.Context) error {
	var statusName string
	if err := bindPathParameter(ctx, "statusName", &statusName); err != nil {
		return err
	}

	return w.Handler.GetOrdersByStatusName(ctx, statusName)
}

func (w *ServerInterfaceWrapper) GetOrderById(ctx echo.Context) error {
	var orderId uuid.UUID
	if err := bindPathParameter(ctx, "orderId", &orderId); err != nil {
		return err
	}

	return w.Handler.GetOrderById(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var orderId uuid.UUID
	if err := bindPathParameter(ctx, "orderId", &orderId); err != nil {
		return err
	}

	var newStatus string
	if err := bindPathParameter(ctx, "newStatus", &newStatus); err != nil {
		return err
	}

	return w.Handler.UpdateOrderStatus(ctx, orderId, newStatus)
}

func bindPathParameter(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is the subset of echo used to register routes; *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every route to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL adds every route to router below baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/orders", wrapper.GetOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/monthly-profits", wrapper.GetMonthlyProfits)
	router.GET(baseURL+"/orders/status/:statusName", wrapper.GetOrdersByStatusName)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrderById)
	router.PATCH(baseURL+"/orders/:orderId/status/:newStatus", wrapper.UpdateOrderStatus)
}
