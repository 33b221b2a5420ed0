package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// GetOrderSummariesQueryHandler loads orders and computes their totals from current
// catalog prices.
//
// Example:
//
//	handler := NewGetOrderSummariesQueryHandler(orderRepo, catalogRepo)
//	summaries, err := handler.Handle(ctx, NewGetOrderSummariesQuery())
//	if err != nil {
//	    return err
//	}
//	for _, s := range summaries {
//	    fmt.Printf("%s %s cost=%s price=%s\n", s.ID, s.StatusName, s.TotalCost, s.TotalPrice)
//	}
type GetOrderSummariesQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogRepository
}

func NewGetOrderSummariesQueryHandler(
	orders ports.OrderRepository,
	catalog ports.CatalogRepository,
) GetOrderSummariesQueryHandler {
	return GetOrderSummariesQueryHandler{orders: orders, catalog: catalog}
}

// Handle returns summaries newest first. An unknown status name yields an empty slice.
func (h GetOrderSummariesQueryHandler) Handle(ctx context.Context, query GetOrderSummariesQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if query.StatusName() == "" {
		orders, err = h.orders.List(ctx)
	} else {
		orders, err = h.orders.ListByStatusName(ctx, query.StatusName())
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(orders))
	if len(orders) == 0 {
		return summaries, nil
	}

	pricer := newOrderPricer(h.catalog)
	if err = pricer.load(ctx, orders, false); err != nil {
		return nil, err
	}

	for _, o := range orders {
		summary, summaryErr := pricer.summary(o)
		if summaryErr != nil {
			return nil, summaryErr
		}
		summaries = append(summaries, summary)
	}

	services.SortNewestFirst(summaries, func(s OrderSummary) time.Time { return s.CreatedAt })

	return summaries, nil
}
