package queries

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// GetOrderDetailQueryHandler loads one order and prices each of its lines.
type GetOrderDetailQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogRepository
}

func NewGetOrderDetailQueryHandler(
	orders ports.OrderRepository,
	catalog ports.CatalogRepository,
) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{orders: orders, catalog: catalog}
}

// Handle returns nil without error when the order does not exist.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (*OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // absent order is not an error
	}
	if err != nil {
		return nil, err
	}

	pricer := newOrderPricer(h.catalog)
	if err = pricer.load(ctx, []*order.Order{o}, true); err != nil {
		return nil, err
	}

	detail, err := pricer.detail(o)
	if err != nil {
		return nil, err
	}

	return &detail, nil
}
