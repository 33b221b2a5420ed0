package ports

import (
	"context"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
)

// CatalogRepository is read access to the reference data orders point at.
type CatalogRepository interface {
	StatusExists(ctx context.Context, id kernel.UUID) (bool, error)
	StatusNameExists(ctx context.Context, name string) (bool, error)
	ProductExists(ctx context.Context, id kernel.UUID) (bool, error)
	ServiceExists(ctx context.Context, id kernel.UUID) (bool, error)

	// GetStatusByName returns errs.ObjectNotFoundError when no status has that name.
	GetStatusByName(ctx context.Context, name string) (*catalog.Status, error)
	GetStatuses(ctx context.Context) ([]*catalog.Status, error)

	// GetProducts and GetServices return the entries found among ids. Unknown ids are
	// skipped, so callers compare lengths when every id must resolve.
	GetProducts(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
	GetServices(ctx context.Context, ids []kernel.UUID) ([]*catalog.Service, error)

	// EnsureStatuses inserts statuses whose names are missing. Existing rows are left as they are.
	EnsureStatuses(ctx context.Context, names []string) error
}
