package queries

import (
	"context"
	"fmt"
	"time"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderSummary is an order with its derived totals.
type OrderSummary struct {
	ID         kernel.UUID
	ResellerID kernel.UUID
	CustomerID kernel.UUID
	StatusID   kernel.UUID
	StatusName string
	ItemCount  int
	TotalCost  decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// OrderDetailItem is one priced order line.
type OrderDetailItem struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	ServiceID   kernel.UUID
	ServiceName string
	Quantity    int
	UnitCost    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalCost   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// OrderDetail is an order summary together with its priced lines.
type OrderDetail struct {
	OrderSummary
	Items []OrderDetailItem
}

// orderPricer resolves catalog references of a batch of orders and computes
// their totals.
type orderPricer struct {
	catalog    ports.CatalogRepository
	aggregator services.OrderAggregator

	statuses map[kernel.UUID]*catalog.Status
	products map[kernel.UUID]*catalog.Product
	services map[kernel.UUID]*catalog.Service
}

func newOrderPricer(catalogRepo ports.CatalogRepository) *orderPricer {
	return &orderPricer{
		catalog:    catalogRepo,
		aggregator: services.NewOrderAggregator(),
	}
}

// load fetches statuses and every product referenced by orders. Services are
// fetched only when withServices is set.
func (p *orderPricer) load(ctx context.Context, orders []*order.Order, withServices bool) error {
	statuses, err := p.catalog.GetStatuses(ctx)
	if err != nil {
		return err
	}
	p.statuses = make(map[kernel.UUID]*catalog.Status, len(statuses))
	for _, s := range statuses {
		p.statuses[s.ID()] = s
	}

	productIDs, serviceIDs := referencedIDs(orders)

	products, err := p.catalog.GetProducts(ctx, productIDs)
	if err != nil {
		return err
	}
	p.products = make(map[kernel.UUID]*catalog.Product, len(products))
	for _, pr := range products {
		p.products[pr.ID()] = pr
	}

	if !withServices {
		return nil
	}

	svcs, err := p.catalog.GetServices(ctx, serviceIDs)
	if err != nil {
		return err
	}
	p.services = make(map[kernel.UUID]*catalog.Service, len(svcs))
	for _, s := range svcs {
		p.services[s.ID()] = s
	}

	return nil
}

func (p *orderPricer) summary(o *order.Order) (OrderSummary, error) {
	status, ok := p.statuses[o.StatusID()]
	if !ok {
		return OrderSummary{}, fmt.Errorf("order %s: %w", o.ID(), errs.NewObjectNotFoundError("status", o.StatusID().String()))
	}

	lines := make([]services.Line, 0, o.ItemCount())
	for _, item := range o.Items() {
		product, err := p.product(o, item)
		if err != nil {
			return OrderSummary{}, err
		}
		lines = append(lines, services.Line{
			UnitCost:  product.UnitCost(),
			UnitPrice: product.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	totals := p.aggregator.ComputeOrderTotals(lines)

	return OrderSummary{
		ID:         o.ID(),
		ResellerID: o.ResellerID(),
		CustomerID: o.CustomerID(),
		StatusID:   o.StatusID(),
		StatusName: status.Name(),
		ItemCount:  totals.ItemCount,
		TotalCost:  totals.TotalCost,
		TotalPrice: totals.TotalPrice,
		CreatedAt:  o.CreatedAt(),
	}, nil
}

func (p *orderPricer) detail(o *order.Order) (OrderDetail, error) {
	summary, err := p.summary(o)
	if err != nil {
		return OrderDetail{}, err
	}

	items := make([]OrderDetailItem, 0, o.ItemCount())
	for _, item := range o.Items() {
		product, err := p.product(o, item)
		if err != nil {
			return OrderDetail{}, err
		}

		service, ok := p.services[item.ServiceID()]
		if !ok {
			return OrderDetail{}, fmt.Errorf("order %s: %w", o.ID(), errs.NewObjectNotFoundError("service", item.ServiceID().String()))
		}

		totalCost, totalPrice := p.aggregator.ComputeLineTotal(product.UnitCost(), product.UnitPrice(), item.Quantity())
		items = append(items, OrderDetailItem{
			ID:          item.ID(),
			OrderID:     item.OrderID(),
			ProductID:   product.ID(),
			ProductName: product.Name(),
			ServiceID:   service.ID(),
			ServiceName: service.Name(),
			Quantity:    item.Quantity(),
			UnitCost:    product.UnitCost(),
			UnitPrice:   product.UnitPrice(),
			TotalCost:   totalCost,
			TotalPrice:  totalPrice,
		})
	}

	return OrderDetail{OrderSummary: summary, Items: items}, nil
}

func (p *orderPricer) product(o *order.Order, item *order.Item) (*catalog.Product, error) {
	product, ok := p.products[item.ProductID()]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", o.ID(), errs.NewObjectNotFoundError("product", item.ProductID().String()))
	}
	return product, nil
}

func referencedIDs(orders []*order.Order) ([]kernel.UUID, []kernel.UUID) {
	seenProducts := make(map[kernel.UUID]struct{})
	seenServices := make(map[kernel.UUID]struct{})
	var productIDs, serviceIDs []kernel.UUID

	for _, o := range orders {
		for _, item := range o.Items() {
			if _, ok := seenProducts[item.ProductID()]; !ok {
				seenProducts[item.ProductID()] = struct{}{}
				productIDs = append(productIDs, item.ProductID())
			}
			if _, ok := seenServices[item.ServiceID()]; !ok {
				seenServices[item.ServiceID()] = struct{}{}
				serviceIDs = append(serviceIDs, item.ServiceID())
			}
		}
	}

	return productIDs, serviceIDs
}
