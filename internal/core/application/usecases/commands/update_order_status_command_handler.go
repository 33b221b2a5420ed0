package commands

import (
	"context"
	"errors"

	"orders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler changes the status of an existing order.
//
// Any status may replace any other. Concurrent updates of the same order are not
// serialized: each one rewrites the whole order row and the last commit wins.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, "In Progress")
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    return err
//	case !updated:
//	    // order or status does not exist
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns false without writing when the order or the status name is unknown.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	status, err := uow.CatalogRepository().GetStatusByName(ctx, cmd.StatusName())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = aggregate.ChangeStatus(status.ID()); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
