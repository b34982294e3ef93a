package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable order line. Title and price are snapshots of the menu
// item taken when the order was created; price is unit price × quantity.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	title      string
	quantity   int
	price      kernel.Money

	isConstructed bool
}

// NewItem snapshots a menu item for quantity units.
//
// Example:
//
//	item, err := order.NewItem(kernel.NewUUID(), pizza.ID(), pizza.Title(), pizza.Price(), 2)
func NewItem(id, menuItemID kernel.UUID, title string, unitPrice kernel.Money, quantity int) (*Item, error) {
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	price, err := unitPrice.Multiply(quantity)
	if err != nil {
		return nil, err
	}

	return RestoreItem(id, menuItemID, title, quantity, price)
}

// RestoreItem rebuilds a persisted line with its frozen price.
func RestoreItem(id, menuItemID kernel.UUID, title string, quantity int, price kernel.Money) (*Item, error) {
	var titleErr, quantityErr error
	if strings.TrimSpace(title) == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(id.Validate(), menuItemID.Validate(), titleErr, quantityErr); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		menuItemID:    menuItemID,
		title:         strings.TrimSpace(title),
		quantity:      quantity,
		price:         price,
		isConstructed: true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i *Item) Title() string {
	return i.title
}

func (i *Item) Quantity() int {
	return i.quantity
}

// Price is the line total, frozen at creation.
func (i *Item) Price() kernel.Money {
	return i.price
}
