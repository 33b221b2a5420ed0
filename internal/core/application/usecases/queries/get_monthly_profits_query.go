package queries

import (
	"context"
	"errors"
	"fmt"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetMonthlyProfitsQueryIsNotConstructed = errors.New(
	"GetMonthlyProfitsQuery must be created via NewGetMonthlyProfitsQuery constructor",
)

type GetMonthlyProfitsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMonthlyProfitsQuery() GetMonthlyProfitsQuery {
	return GetMonthlyProfitsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMonthlyProfitsQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyProfitsQueryIsNotConstructed)
}

// GetMonthlyProfitsQueryHandler sums the profit of completed orders per creation month.
//
// Example:
//
//	handler := NewGetMonthlyProfitsQueryHandler(orderRepo, catalogRepo)
//	profits, err := handler.Handle(ctx, NewGetMonthlyProfitsQuery())
//	for _, p := range profits {
//	    fmt.Printf("%04d-%02d %s\n", p.Year, p.Month, p.Profit)
//	}
type GetMonthlyProfitsQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogRepository
}

func NewGetMonthlyProfitsQueryHandler(
	orders ports.OrderRepository,
	catalog ports.CatalogRepository,
) GetMonthlyProfitsQueryHandler {
	return GetMonthlyProfitsQueryHandler{orders: orders, catalog: catalog}
}

// Handle returns one entry per month with completed orders, ascending.
func (h GetMonthlyProfitsQueryHandler) Handle(ctx context.Context, query GetMonthlyProfitsQuery) ([]services.MonthlyProfit, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	completed, err := h.orders.ListByStatusName(ctx, catalog.StatusCompleted)
	if err != nil {
		return nil, err
	}

	aggregator := services.NewOrderAggregator()
	if len(completed) == 0 {
		return aggregator.ComputeMonthlyProfits(nil), nil
	}

	productIDs, _ := referencedIDs(completed)
	products, err := h.catalog.GetProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	lines := make([]services.ProfitLine, 0, len(completed))
	for _, o := range completed {
		for _, item := range o.Items() {
			product, ok := byID[item.ProductID()]
			if !ok {
				return nil, fmt.Errorf("order %s: %w", o.ID(), errs.NewObjectNotFoundError("product", item.ProductID().String()))
			}

			lines = append(lines, services.ProfitLine{
				OrderCreatedAt:  o.CreatedAt(),
				OrderStatusName: catalog.StatusCompleted,
				Line: services.Line{
					UnitCost:  product.UnitCost(),
					UnitPrice: product.UnitPrice(),
					Quantity:  item.Quantity(),
				},
			})
		}
	}

	return aggregator.ComputeMonthlyProfits(lines), nil
}
