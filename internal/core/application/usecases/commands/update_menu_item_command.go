package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand changes a dish. Orders already placed keep the price
// they were placed with.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	restaurantID kernel.UUID
	title        string
	description  string
	price        kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	itemID, restaurantID kernel.UUID,
	title, description string,
	price kernel.Money,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		itemID:       itemID,
		restaurantID: restaurantID,
		title:        strings.TrimSpace(title),
		description:  strings.TrimSpace(description),
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		restaurantID.Validate(),
		required("title", cmd.title),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// RestaurantID is the restaurant asking for the change.
func (c UpdateMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c UpdateMenuItemCommand) Title() string {
	return c.title
}

func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}
