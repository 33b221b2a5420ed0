package http

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RequestKind tags the request shapes that carry validation rules.
type RequestKind int

const (
	CreateOrderRequestKind RequestKind = iota + 1
	UpdateOrderStatusRequestKind
	GetOrdersByStatusNameRequestKind
)

func (k RequestKind) String() string {
	switch k {
	case CreateOrderRequestKind:
		return "create_order"
	case UpdateOrderStatusRequestKind:
		return "update_order_status"
	case GetOrdersByStatusNameRequestKind:
		return "get_orders_by_status_name"
	default:
		return "unknown"
	}
}

// Request is implemented by every payload the validator understands.
type Request interface {
	Kind() RequestKind
}

func (CreateOrderRequest) Kind() RequestKind           { return CreateOrderRequestKind }
func (UpdateOrderStatusRequest) Kind() RequestKind     { return UpdateOrderStatusRequestKind }
func (GetOrdersByStatusNameRequest) Kind() RequestKind { return GetOrdersByStatusNameRequestKind }

// ExistenceChecker answers the membership questions validation depends on.
type ExistenceChecker interface {
	StatusExists(ctx context.Context, id kernel.UUID) (bool, error)
	StatusNameExists(ctx context.Context, name string) (bool, error)
	ProductExists(ctx context.Context, id kernel.UUID) (bool, error)
	ServiceExists(ctx context.Context, id kernel.UUID) (bool, error)
	OrderExists(ctx context.Context, id kernel.UUID) (bool, error)
}

// ValidationErrors groups failure messages by request property.
type ValidationErrors map[string][]string

func (e ValidationErrors) Add(property, message string) {
	e[property] = append(e[property], message)
}

type validateFunc func(ctx context.Context, checker ExistenceChecker, request Request, failures ValidationErrors) error

// RequestValidator runs the rules registered for a request kind.
type RequestValidator struct {
	checker ExistenceChecker
	rules   map[RequestKind]validateFunc
}

func NewRequestValidator(checker ExistenceChecker) *RequestValidator {
	return &RequestValidator{
		checker: checker,
		rules: map[RequestKind]validateFunc{
			CreateOrderRequestKind:           validateCreateOrder,
			UpdateOrderStatusRequestKind:     validateUpdateOrderStatus,
			GetOrdersByStatusNameRequestKind: validateGetOrdersByStatusName,
		},
	}
}

// Validate returns the grouped failures of request, or nil when it is valid.
// Kinds without registered rules always pass. A non-nil error means a lookup failed.
func (v *RequestValidator) Validate(ctx context.Context, request Request) (ValidationErrors, error) {
	rule, ok := v.rules[request.Kind()]
	if !ok {
		return nil, nil
	}

	failures := ValidationErrors{}
	if err := rule(ctx, v.checker, request, failures); err != nil {
		return nil, fmt.Errorf("validate %s request: %w", request.Kind(), err)
	}
	if len(failures) == 0 {
		return nil, nil
	}
	return failures, nil
}

func validateCreateOrder(ctx context.Context, checker ExistenceChecker, request Request, failures ValidationErrors) error {
	req, ok := request.(CreateOrderRequest)
	if !ok {
		return fmt.Errorf("unexpected request type %T", request)
	}

	if req.ResellerId == uuid.Nil {
		failures.Add("ResellerId", "'Reseller Id' must not be empty.")
	}
	if req.CustomerId == uuid.Nil {
		failures.Add("CustomerId", "'Customer Id' must not be empty.")
	}

	if err := checkReference(ctx, failures, "StatusId", "Status", req.StatusId, checker.StatusExists); err != nil {
		return err
	}

	if len(req.Items) == 0 {
		failures.Add("Items", "Order must contain at least one item.")
		return nil
	}

	for i, item := range req.Items {
		prefix := fmt.Sprintf("Items[%d].", i)
		if err := checkReference(ctx, failures, prefix+"ProductId", "Product", item.ProductId, checker.ProductExists); err != nil {
			return err
		}
		if err := checkReference(ctx, failures, prefix+"ServiceId", "Service", item.ServiceId, checker.ServiceExists); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			failures.Add(prefix+"Quantity", "Quantity must be greater than zero.")
		}
	}
	return nil
}

func validateUpdateOrderStatus(ctx context.Context, checker ExistenceChecker, request Request, failures ValidationErrors) error {
	req, ok := request.(UpdateOrderStatusRequest)
	if !ok {
		return fmt.Errorf("unexpected request type %T", request)
	}

	if req.OrderId == uuid.Nil {
		failures.Add("OrderId", "OrderId is required.")
	} else {
		exists, err := checker.OrderExists(ctx, kernel.UUIDFromGoogle(req.OrderId))
		if err != nil {
			return err
		}
		if !exists {
			failures.Add("OrderId", fmt.Sprintf("Order with ID '%s' does not exist.", req.OrderId))
		}
	}

	return checkStatusName(ctx, checker, failures, "NewStatus", req.NewStatus)
}

func validateGetOrdersByStatusName(ctx context.Context, checker ExistenceChecker, request Request, failures ValidationErrors) error {
	req, ok := request.(GetOrdersByStatusNameRequest)
	if !ok {
		return fmt.Errorf("unexpected request type %T", request)
	}

	return checkStatusName(ctx, checker, failures, "StatusName", req.StatusName)
}

func checkReference(
	ctx context.Context,
	failures ValidationErrors,
	property string,
	entity string,
	id uuid.UUID,
	exists func(context.Context, kernel.UUID) (bool, error),
) error {
	if id == uuid.Nil {
		failures.Add(property, fmt.Sprintf("'%s Id' must not be empty.", entity))
		return nil
	}

	ok, err := exists(ctx, kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}
	if !ok {
		failures.Add(property, fmt.Sprintf("%s with the given Id does not exist.", entity))
	}
	return nil
}

// checkStatusName stops at the first failed rule.
func checkStatusName(ctx context.Context, checker ExistenceChecker, failures ValidationErrors, property, name string) error {
	if strings.TrimSpace(name) == "" {
		failures.Add(property, property+" is required.")
		return nil
	}
	if utf8.RuneCountInString(name) > catalog.StatusNameMaxLength {
		failures.Add(property, fmt.Sprintf("%s cannot exceed %d characters.", property, catalog.StatusNameMaxLength))
		return nil
	}

	exists, err := checker.StatusNameExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		failures.Add(property, fmt.Sprintf("Order status '%s' does not exist.", name))
	}
	return nil
}
