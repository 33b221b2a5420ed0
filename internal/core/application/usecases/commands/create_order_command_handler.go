package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a new order and its items in one transaction.
// The creation time always comes from the handler's clock.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, nil)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation. A nil clock
// means time.Now in UTC.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CreateOrderCommandHandler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle builds the order with fresh ids and stores it. It returns the new order id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	orderID := kernel.NewUUID()
	requested := cmd.Items()
	items := make([]*order.Item, 0, len(requested))
	for _, line := range requested {
		item, err := order.NewItem(kernel.NewUUID(), orderID, line.ProductID, line.ServiceID, line.Quantity)
		if err != nil {
			return kernel.UUID{}, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(orderID, cmd.ResellerID(), cmd.CustomerID(), cmd.StatusID(), h.now(), items)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return orderID, nil
}
