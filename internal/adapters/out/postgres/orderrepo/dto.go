// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order row owns its item rows; items are written with the order and loaded with Preload.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Version is the optimistic-lock column bumped by every update.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string     `gorm:"type:varchar(512);not null"`
	Status          string     `gorm:"type:varchar(16);not null;index"`
	TotalPrice      int64      `gorm:"not null"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	Version         int64      `gorm:"not null"`
	Items           []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. MenuItemID is a plain reference without a
// foreign key: menu items may be deleted while orders keep their snapshot.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Position   int       `gorm:"not null"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Quantity   int       `gorm:"not null"`
	ItemPrice  int64     `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	orderID := aggregate.ID().Bytes()
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			MenuItemID: item.MenuItemID().Bytes(),
			Position:   i,
			Title:      item.Title(),
			Quantity:   item.Quantity(),
			ItemPrice:  item.Price().Cents(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		ClientID:        aggregate.ClientID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		CourierID:       courierID,
		DeliveryAddress: aggregate.DeliveryAddress(),
		Status:          aggregate.Status().String(),
		TotalPrice:      aggregate.TotalPrice().Cents(),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

// ToDomain converts a row (with preloaded items) to an order aggregate.
// Exported for read models that load orders without a repository.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, clientID, restaurantID, courierID, dto.DeliveryAddress,
		status, total, items, dto.CreatedAt, dto.Version)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.ItemPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, menuItemID, dto.Title, dto.Quantity, price)
}
