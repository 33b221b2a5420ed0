// Package ports defines the persistence contracts of the order service.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites every column of an existing order record. Items are not touched.
	// Returns gorm.ErrRecordNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// List returns all orders with their items, newest first.
	List(ctx context.Context) ([]*order.Order, error)

	// ListByStatusName returns orders whose status has the given name, newest first.
	// The name is matched exactly.
	ListByStatusName(ctx context.Context, statusName string) ([]*order.Order, error)
}
