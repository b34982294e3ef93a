// Package menurepo persists restaurant menu items with GORM.
package menurepo

import (
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO is a row of menu_items. Items go away with their restaurant.
type MenuItemDTO struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Restaurant   *userrepo.UserDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Title        string            `gorm:"type:varchar(255);not null"`
	Description  string            `gorm:"type:text"`
	Price        int64             `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Title:        item.Title(),
		Description:  item.Description(),
		Price:        item.Price().Cents(),
	}
}

// ToDomain converts a row to a menu item. Read models reuse it.
func ToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, restaurantID, dto.Title, dto.Description, price)
}
