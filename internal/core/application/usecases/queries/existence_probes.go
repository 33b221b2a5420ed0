package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
)

// ExistenceProbes answers membership questions for request validation.
// Nothing else in the service uses them.
type ExistenceProbes struct {
	orders  ports.OrderRepository
	catalog ports.CatalogRepository
}

func NewExistenceProbes(orders ports.OrderRepository, catalog ports.CatalogRepository) ExistenceProbes {
	return ExistenceProbes{orders: orders, catalog: catalog}
}

func (p ExistenceProbes) StatusExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return p.catalog.StatusExists(ctx, id)
}

func (p ExistenceProbes) StatusNameExists(ctx context.Context, name string) (bool, error) {
	return p.catalog.StatusNameExists(ctx, name)
}

func (p ExistenceProbes) ProductExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return p.catalog.ProductExists(ctx, id)
}

func (p ExistenceProbes) ServiceExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return p.catalog.ServiceExists(ctx, id)
}

func (p ExistenceProbes) OrderExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return p.orders.Exists(ctx, id)
}
