package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-validation failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderItemRequest is one requested order line.
type CreateOrderItemRequest struct {
	ProductId uuid.UUID `json:"productId"`
	ServiceId uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	ResellerId uuid.UUID                `json:"resellerId"`
	CustomerId uuid.UUID                `json:"customerId"`
	StatusId   uuid.UUID                `json:"statusId"`
	Items      []CreateOrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest carries the path parameters of PATCH /orders/{orderId}/status/{newStatus}.
type UpdateOrderStatusRequest struct {
	OrderId   uuid.UUID
	NewStatus string
}

// GetOrdersByStatusNameRequest carries the path parameter of GET /orders/status/{statusName}.
type GetOrdersByStatusNameRequest struct {
	StatusName string
}

type OrderSummary struct {
	Id          uuid.UUID       `json:"id"`
	ResellerId  uuid.UUID       `json:"resellerId"`
	CustomerId  uuid.UUID       `json:"customerId"`
	StatusId    uuid.UUID       `json:"statusId"`
	StatusName  string          `json:"statusName"`
	ItemCount   int             `json:"itemCount"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	CreatedDate time.Time       `json:"createdDate"`
}

type OrderItem struct {
	Id          uuid.UUID       `json:"id"`
	OrderId     uuid.UUID       `json:"orderId"`
	ProductId   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	ServiceId   uuid.UUID       `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type OrderDetail struct {
	OrderSummary
	Items []OrderItem `json:"items"`
}

type MonthlyProfit struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Profit decimal.Decimal `json:"profit"`
}
