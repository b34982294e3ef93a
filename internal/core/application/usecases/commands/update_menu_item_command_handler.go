package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
)

type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if err = ensureOwnsMenuItem(item, cmd.RestaurantID()); err != nil {
		return err
	}

	if err = item.Update(cmd.Title(), cmd.Description(), cmd.Price()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureOwnsMenuItem(item *menu.MenuItem, restaurantID kernel.UUID) error {
	if !item.BelongsTo(restaurantID) {
		return errs.NewForbiddenError("menu item "+item.ID().String(), "restaurant "+item.RestaurantID().String())
	}
	return nil
}
