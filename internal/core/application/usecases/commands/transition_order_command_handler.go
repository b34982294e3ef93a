package commands

import (
	"context"
)

// TransitionOrderCommandHandler applies one lifecycle action. The order is
// written with a version check, so of two racing requests that both passed
// the domain checks only the first to commit succeeds; the other gets
// errs.ErrVersionIsInvalid. That closes the "first courier wins" race.
//
// Example:
//
//	actor := order.NewActor(courierID, user.Courier)
//	cmd, _ := NewTransitionOrderCommand(orderID, actor, order.TakeDelivery)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Apply(cmd.Actor(), cmd.Action()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
