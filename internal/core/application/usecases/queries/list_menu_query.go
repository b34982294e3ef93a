package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListMenuQueryIsNotConstructed = errors.New(
	"ListMenuQuery must be created via NewListMenuQuery constructor",
)

// ListMenuQuery lists a restaurant's menu ordered by title.
type ListMenuQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListMenuQuery(restaurantID kernel.UUID) (ListMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListMenuQuery{}, err
	}
	return ListMenuQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

func (q ListMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

type MenuItemView struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Title        string
	Description  string
	Price        kernel.Money
}
