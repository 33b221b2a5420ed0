package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemBelongsToAnotherOrder is returned when an item's order id differs from the order's id.
	ErrItemBelongsToAnotherOrder = errors.New("item belongs to another order")
)

// Order is a reseller's purchase record for a customer. It is the aggregate root
// that owns its items.
//
// Order follows these invariants:
//   - id, reseller, customer and status ids are valid UUIDs
//   - every item carries this order's id
//   - only the status may change after creation
//
// Order is not safe for concurrent mutation. Two requests updating the same order
// each work on their own copy and the last write to storage wins.
type Order struct {
	id         kernel.UUID
	resellerID kernel.UUID
	customerID kernel.UUID
	statusID   kernel.UUID
	createdAt  time.Time
	items      []*Item

	isConstructed bool
}

// NewOrder creates an order stamped with createdAt.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := order.NewItem(kernel.NewUUID(), orderID, productID, serviceID, 2)
//	o, err := order.NewOrder(orderID, resellerID, customerID, createdStatusID, time.Now().UTC(), []*order.Item{item})
func NewOrder(
	id kernel.UUID,
	resellerID kernel.UUID,
	customerID kernel.UUID,
	statusID kernel.UUID,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setParties(resellerID, customerID),
		o.setStatusID(statusID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := o.setItems(items); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage with the same checks as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	resellerID kernel.UUID,
	customerID kernel.UUID,
	statusID kernel.UUID,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	return NewOrder(id, resellerID, customerID, statusID, createdAt, items)
}

// Validate reports whether the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ResellerID() kernel.UUID {
	return o.resellerID
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) StatusID() kernel.UUID {
	return o.statusID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the order lines in insertion order. The slice is a copy.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount returns the number of order lines.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// ChangeStatus moves the order to statusID. Any status may follow any other.
func (o *Order) ChangeStatus(statusID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.setStatusID(statusID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(resellerID, customerID kernel.UUID) error {
	if err := errors.Join(resellerID.Validate(), customerID.Validate()); err != nil {
		return err
	}
	o.resellerID = resellerID
	o.customerID = customerID
	return nil
}

func (o *Order) setStatusID(statusID kernel.UUID) error {
	if err := statusID.Validate(); err != nil {
		return err
	}
	o.statusID = statusID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setItems(items []*Item) error {
	o.items = make([]*Item, 0, len(items))
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.OrderID().IsEqual(o.id) {
			return fmt.Errorf("item %d (%s): %w", idx, item.ID(), ErrItemBelongsToAnotherOrder)
		}
		o.items = append(o.items, item)
	}
	return nil
}
