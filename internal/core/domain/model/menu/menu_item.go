// Package menu models the dishes a restaurant offers. Orders reference menu
// items but copy title and price at creation time, so editing or deleting an
// item never changes an existing order.
package menu

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is owned by exactly one restaurant user.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	title        string
	description  string
	price        kernel.Money

	isConstructed bool
}

func NewMenuItem(
	id, restaurantID kernel.UUID,
	title, description string,
	price kernel.Money,
) (*MenuItem, error) {
	item := &MenuItem{isConstructed: true}

	var idErr, restaurantErr error
	if idErr = id.Validate(); idErr == nil {
		item.id = id
	}
	if restaurantErr = restaurantID.Validate(); restaurantErr == nil {
		item.restaurantID = restaurantID
	}

	if err := errors.Join(idErr, restaurantErr, item.Update(title, description, price)); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem rebuilds a persisted item.
func RestoreMenuItem(
	id, restaurantID kernel.UUID,
	title, description string,
	price kernel.Money,
) (*MenuItem, error) {
	return NewMenuItem(id, restaurantID, title, description, price)
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

func (m *MenuItem) Title() string {
	return m.title
}

func (m *MenuItem) Description() string {
	return m.description
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// BelongsTo reports whether restaurantID owns the item.
func (m *MenuItem) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}

// Update replaces title, description and price. On error nothing changes.
func (m *MenuItem) Update(title, description string, price kernel.Money) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	m.title = title
	m.description = strings.TrimSpace(description)
	m.price = price
	return nil
}
