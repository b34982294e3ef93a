package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMenuQueryHandler returns NotFound when the id is not a restaurant, so an
// empty menu and an unknown restaurant can be told apart.
type ListMenuQueryHandler struct {
	db *gorm.DB
}

func NewListMenuQueryHandler(db *gorm.DB) ListMenuQueryHandler {
	return ListMenuQueryHandler{db: db}
}

func (h ListMenuQueryHandler) Handle(ctx context.Context, query ListMenuQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var restaurants int64
	if err := h.db.WithContext(ctx).
		Table("users").
		Where("id = ? AND role = ?", query.RestaurantID().Bytes(), user.Restaurant.String()).
		Count(&restaurants).Error; err != nil {
		return nil, err
	}
	if restaurants == 0 {
		return nil, errs.NewObjectNotFoundError("restaurant", query.RestaurantID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			description,
			price
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY title, id
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemView, 0)
	for rows.Next() {
		var id uuid.UUID
		var cents int64
		item := MenuItemView{RestaurantID: query.RestaurantID()}

		if err = rows.Scan(&id, &item.Title, &item.Description, &cents); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		price, priceErr := kernel.NewMoney(cents)
		if priceErr != nil {
			return nil, priceErr
		}
		item.Price = price
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
