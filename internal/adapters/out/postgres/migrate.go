package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/menurepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/tokenrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service uses. Users come first
// because menu items and tokens reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&menurepo.MenuItemDTO{},
		&tokenrepo.TokenDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
}
