package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product/service line of an order.
type Item struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	serviceID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewItem builds an order line. A zero quantity is accepted so that legacy rows
// with a missing quantity can be restored; negative quantities are rejected.
func NewItem(id, orderID, productID, serviceID kernel.UUID, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setIDs(id, orderID, productID, serviceID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) ServiceID() kernel.UUID {
	return i.serviceID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) setIDs(id, orderID, productID, serviceID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		productID.Validate(),
		serviceID.Validate(),
	); err != nil {
		return err
	}

	i.id = id
	i.orderID = orderID
	i.productID = productID
	i.serviceID = serviceID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}
