package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads an order with its lines and applies read
// scoping. A missing order is NotFound; an order the actor may not see is
// Forbidden.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select(orderColumns).
		Where("id = ?", query.OrderID().Bytes()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderView{}, err
	}

	items, err := loadItems(ctx, h.db, []uuid.UUID{row.ID})
	if err != nil {
		return OrderView{}, err
	}

	o, err := toOrder(row, items[row.ID])
	if err != nil {
		return OrderView{}, err
	}

	if err = o.CanBeViewedBy(query.Actor()); err != nil {
		return OrderView{}, err
	}

	return newOrderView(o), nil
}

// loadItems fetches the lines of every listed order keyed by order id, each
// slice in creation order.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]orderItemRow, error) {
	byOrder := make(map[uuid.UUID][]orderItemRow, len(orderIDs))
	if len(orderIDs) == 0 {
		return byOrder, nil
	}

	var rows []orderItemRow
	if err := db.WithContext(ctx).
		Table("order_items").
		Select("id, order_id, menu_item_id, title, quantity, item_price").
		Where("order_id IN ?", orderIDs).
		Order("order_id, position").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], row)
	}
	return byOrder, nil
}
