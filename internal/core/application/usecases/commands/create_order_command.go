package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("order must have at least one item")
)

// CreateOrderItem is one requested line of a new order.
type CreateOrderItem struct {
	ProductID kernel.UUID
	ServiceID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to record a new reseller order.
// Catalog references are expected to have been checked by request validation;
// the command only checks that identifiers are present and at least one item is given.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(resellerID, customerID, createdStatusID, []CreateOrderItem{
//	    {ProductID: mailboxID, ServiceID: emailID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	resellerID kernel.UUID
	customerID kernel.UUID
	statusID   kernel.UUID
	items      []CreateOrderItem

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	resellerID kernel.UUID,
	customerID kernel.UUID,
	statusID kernel.UUID,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParties(resellerID, customerID),
		cmd.setStatusID(statusID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ResellerID() kernel.UUID {
	return c.resellerID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) StatusID() kernel.UUID {
	return c.statusID
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	items := make([]CreateOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setParties(resellerID, customerID kernel.UUID) error {
	if err := errors.Join(resellerID.Validate(), customerID.Validate()); err != nil {
		return err
	}

	c.resellerID = resellerID
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setStatusID(statusID kernel.UUID) error {
	if err := statusID.Validate(); err != nil {
		return err
	}

	c.statusID = statusID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for idx, item := range items {
		if err := errors.Join(item.ProductID.Validate(), item.ServiceID.Validate()); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}

	c.items = make([]CreateOrderItem, len(items))
	copy(c.items, items)
	return nil
}
