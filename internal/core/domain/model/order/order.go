package order

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the delivery workflow. It owns its items and
// moves through the lifecycle described on Status.
//
// Order follows these invariants:
//   - client and restaurant are set from creation and never change
//   - items are non-empty and immutable
//   - totalPrice equals the sum of item prices at creation and only changes through Override
//   - Delivering and Completed orders always have a courier
//   - status changes only through Apply (actor-gated) or Override (administrator)
//
// version is the optimistic-lock token read from storage. The repository
// refuses to write an order whose version is no longer current.
type Order struct {
	id              kernel.UUID
	clientID        kernel.UUID
	restaurantID    kernel.UUID
	courierID       *kernel.UUID
	deliveryAddress string
	status          Status
	totalPrice      kernel.Money
	items           []*Item
	createdAt       time.Time
	version         int64

	isConstructed bool
}

// Actor is the authenticated principal asking to act on an order.
type Actor struct {
	ID   kernel.UUID
	Role user.Role
}

// NewActor pairs an identifier with its role.
func NewActor(id kernel.UUID, role user.Role) Actor {
	return Actor{ID: id, Role: role}
}

// NewOrder creates an order in Created status without a courier. The total is
// computed once from the item snapshots.
//
// Example:
//
//	line, _ := order.NewItem(kernel.NewUUID(), pizza.ID(), pizza.Title(), pizza.Price(), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), clientID, restaurantID, "1 Main St", []*order.Item{line}, time.Now())
func NewOrder(
	id, clientID, restaurantID kernel.UUID,
	deliveryAddress string,
	items []*Item,
	createdAt time.Time,
) (*Order, error) {
	total := kernel.Money{}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		var err error
		if total, err = total.Add(item.Price()); err != nil {
			return nil, err
		}
	}

	return RestoreOrder(id, clientID, restaurantID, nil, deliveryAddress, Created, total, items, createdAt, 0)
}

// RestoreOrder rebuilds a persisted order, including its optimistic-lock version.
func RestoreOrder(
	id, clientID, restaurantID kernel.UUID,
	courierID *kernel.UUID,
	deliveryAddress string,
	status Status,
	totalPrice kernel.Money,
	items []*Item,
	createdAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		status:        status,
		totalPrice:    totalPrice,
		createdAt:     createdAt.UTC(),
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRestaurantID(restaurantID),
		o.setCourierID(courierID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// RestaurantID returns the restaurant preparing the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Items returns a copy of the order lines.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-lock version the order was read with.
func (o *Order) Version() int64 {
	return o.version
}

// IsAssignedTo reports whether courierID is the order's courier.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// CanBeViewedBy checks read access. Clients and restaurants see their own
// orders, couriers see orders assigned to them and unassigned open orders,
// administrators see everything.
func (o *Order) CanBeViewedBy(actor Actor) error {
	switch actor.Role {
	case user.Admin:
		return nil
	case user.Client:
		if o.clientID.IsEqual(actor.ID) {
			return nil
		}
		return o.forbidden(ownerClient)
	case user.Restaurant:
		if o.restaurantID.IsEqual(actor.ID) {
			return nil
		}
		return o.forbidden(ownerRestaurant)
	case user.Courier:
		if o.IsAssignedTo(actor.ID) || (o.courierID == nil && o.status.IsOpenForCourier()) {
			return nil
		}
		return o.forbidden(ownerAssignedCourier)
	case user.UnknownRole:
	}
	return o.forbidden(ownerClient)
}

// OverridePatch lists the fields an administrator may set directly. Nil
// fields are left untouched; UnassignCourier clears the courier.
type OverridePatch struct {
	Status          *Status
	TotalPrice      *kernel.Money
	CourierID       *kernel.UUID
	UnassignCourier bool
}

// Override applies an administrative correction bypassing the transition
// table. A completed order cannot be deleted, and a Delivering or Completed
// order must keep a courier. On error the order is left unchanged.
func (o *Order) Override(patch OverridePatch) error {
	if patch.CourierID != nil && patch.UnassignCourier {
		return errs.NewValueIsInvalidError("courierId and unassignCourier are mutually exclusive")
	}

	status := o.status
	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return err
		}
		status = *patch.Status
	}

	if status == Deleted && o.status == Completed {
		return errs.NewIllegalTransitionError("order", o.status.String(), "a completed order cannot be deleted")
	}

	courierID := o.courierID
	switch {
	case patch.UnassignCourier:
		courierID = nil
	case patch.CourierID != nil:
		if err := patch.CourierID.Validate(); err != nil {
			return err
		}
		id := *patch.CourierID
		courierID = &id
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}

	if patch.TotalPrice != nil {
		o.totalPrice = *patch.TotalPrice
	}
	o.status = status
	o.courierID = courierID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	o.clientID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCourierID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courier", err)
	}
	courierID := *id
	o.courierID = &courierID
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
