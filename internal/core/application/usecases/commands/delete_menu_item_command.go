package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand removes a dish. Order lines referencing it keep their snapshot.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(itemID, restaurantID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := errors.Join(itemID.Validate(), restaurantID.Validate()); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return DeleteMenuItemCommand{
		itemID:       itemID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c DeleteMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}
