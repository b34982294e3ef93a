package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler places an order. Every line must reference a menu
// item of the requested restaurant; one bad line fails the whole order and
// nothing is written. Line prices are copied from the menu at this moment.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	restaurant, err := uow.UserRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if restaurant.Role() != user.Restaurant {
		return errs.NewObjectNotFoundError("restaurant", cmd.RestaurantID().String())
	}

	items, err := h.snapshotLines(ctx, uow, cmd)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.ClientID(), cmd.RestaurantID(), cmd.DeliveryAddress(), items, time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) snapshotLines(ctx context.Context, uow UoW, cmd CreateOrderCommand) ([]*order.Item, error) {
	lines := cmd.Lines()

	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID)
	}

	found, err := uow.MenuRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*menu.MenuItem, len(found))
	for _, item := range found {
		byID[item.ID().String()] = item
	}

	items := make([]*order.Item, 0, len(lines))
	var lineErrs []error
	for _, line := range lines {
		menuItem, ok := byID[line.MenuItemID.String()]
		if !ok {
			lineErrs = append(lineErrs, errs.NewObjectNotFoundError("menu item", line.MenuItemID.String()))
			continue
		}
		if !menuItem.BelongsTo(cmd.RestaurantID()) {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("menu item %s does not belong to restaurant %s", menuItem.ID(), cmd.RestaurantID())))
			continue
		}

		item, itemErr := order.NewItem(kernel.NewUUID(), menuItem.ID(), menuItem.Title(), menuItem.Price(), line.Quantity)
		if itemErr != nil {
			lineErrs = append(lineErrs, itemErr)
			continue
		}
		items = append(items, item)
	}

	if err = errors.Join(lineErrs...); err != nil {
		return nil, err
	}

	return items, nil
}
