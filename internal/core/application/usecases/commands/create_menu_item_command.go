package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a dish to the calling restaurant's menu.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	restaurantID kernel.UUID
	title        string
	description  string
	price        kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	itemID, restaurantID kernel.UUID,
	title, description string,
	price kernel.Money,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
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
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateMenuItemCommand) Title() string {
	return c.title
}

func (c CreateMenuItemCommand) Description() string {
	return c.description
}

func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}
