package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderView is the read model of an order and its lines.
type OrderView struct {
	ID              kernel.UUID
	ClientID        kernel.UUID
	RestaurantID    kernel.UUID
	CourierID       *kernel.UUID
	DeliveryAddress string
	Status          order.Status
	TotalPrice      kernel.Money
	CreatedAt       time.Time
	Items           []OrderItemView
}

// OrderItemView is one frozen line. Price is the line total.
type OrderItemView struct {
	MenuItemID kernel.UUID
	Title      string
	Quantity   int
	Price      kernel.Money
}

type orderRow struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	RestaurantID    uuid.UUID
	CourierID       *uuid.UUID
	DeliveryAddress string
	Status          string
	TotalPrice      int64
	CreatedAt       time.Time
	Version         int64
}

type orderItemRow struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	MenuItemID uuid.UUID
	Title      string
	Quantity   int
	ItemPrice  int64
}

const orderColumns = "id, client_id, restaurant_id, courier_id, delivery_address, status, total_price, created_at, version"

// toOrder rebuilds the aggregate so read access goes through the same rules
// as the write side.
func toOrder(row orderRow, itemRows []orderItemRow) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(row.ClientID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if row.CourierID != nil {
		c, cErr := kernel.UUIDFromBytes(row.CourierID[:])
		if cErr != nil {
			return nil, cErr
		}
		courierID = &c
	}

	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemRows))
	for _, r := range itemRows {
		item, itemErr := toItem(r)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, clientID, restaurantID, courierID, row.DeliveryAddress,
		status, total, items, row.CreatedAt, row.Version)
}

func toItem(row orderItemRow) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(row.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(row.ItemPrice)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, menuItemID, row.Title, row.Quantity, price)
}

func newOrderView(o *order.Order) OrderView {
	view := OrderView{
		ID:              o.ID(),
		ClientID:        o.ClientID(),
		RestaurantID:    o.RestaurantID(),
		CourierID:       o.Courier(),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          o.Status(),
		TotalPrice:      o.TotalPrice(),
		CreatedAt:       o.CreatedAt(),
		Items:           make([]OrderItemView, 0, len(o.Items())),
	}
	for _, item := range o.Items() {
		view.Items = append(view.Items, OrderItemView{
			MenuItemID: item.MenuItemID(),
			Title:      item.Title(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		})
	}
	return view
}
