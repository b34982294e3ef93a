package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// OverrideOrderCommandHandler applies an administrative patch. A courier set
// by the patch must be an existing COURIER account.
type OverrideOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewOverrideOrderCommandHandler(uowFactory UoWFactory) OverrideOrderCommandHandler {
	return OverrideOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *OverrideOrderCommandHandler) Handle(ctx context.Context, cmd OverrideOrderCommand) error {
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

	patch := cmd.Patch()
	if patch.CourierID != nil {
		courier, err := uow.UserRepository().Get(ctx, *patch.CourierID)
		if err != nil {
			return err
		}
		if courier.Role() != user.Courier {
			return errs.NewValueIsInvalidErrorWithCause("courierId",
				fmt.Errorf("user %s is a %s, not a courier", courier.ID(), courier.Role()))
		}
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Override(patch); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
