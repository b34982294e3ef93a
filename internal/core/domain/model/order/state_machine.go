package order

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// Action is a lifecycle step an actor may request.
type Action int

const (
	UnknownAction Action = iota
	// Accept is the restaurant taking the order: Created -> Accepted.
	Accept
	// Prepare is the restaurant marking the food ready: Accepted -> Prepared.
	Prepare
	// TakeDelivery attaches the calling courier to an unassigned open order.
	TakeDelivery
	// PickUp is the assigned courier collecting the food: Prepared -> Delivering.
	PickUp
	// Deliver is the assigned courier handing over: Delivering -> Completed.
	Deliver
	// Delete is the client withdrawing an untouched order: Created -> Deleted.
	Delete
)

func (a Action) String() string {
	switch a {
	case Accept:
		return "accept"
	case Prepare:
		return "prepare"
	case TakeDelivery:
		return "take-delivery"
	case PickUp:
		return "pick-up"
	case Deliver:
		return "deliver"
	case Delete:
		return "delete"
	case UnknownAction:
	}
	return "unknown"
}

// owner is the relation an actor must have with the order.
type owner int

const (
	ownerRestaurant owner = iota + 1
	ownerClient
	ownerAnyCourier
	ownerAssignedCourier
)

// transition is one row of the table: who may do it, from where, to what.
// A zero target leaves the status unchanged.
type transition struct {
	role   user.Role
	owner  owner
	from   []Status
	target Status
}

func getTransitions() map[Action]transition {
	//nolint:exhaustive // UnknownAction has no row
	return map[Action]transition{
		Accept:       {role: user.Restaurant, owner: ownerRestaurant, from: []Status{Created}, target: Accepted},
		Prepare:      {role: user.Restaurant, owner: ownerRestaurant, from: []Status{Accepted}, target: Prepared},
		TakeDelivery: {role: user.Courier, owner: ownerAnyCourier, from: []Status{Created, Accepted, Prepared}},
		PickUp:       {role: user.Courier, owner: ownerAssignedCourier, from: []Status{Prepared}, target: Delivering},
		Deliver:      {role: user.Courier, owner: ownerAssignedCourier, from: []Status{Delivering}, target: Completed},
		Delete:       {role: user.Client, owner: ownerClient, from: []Status{Created}, target: Deleted},
	}
}

// Apply performs action on behalf of actor. Checks run in a fixed order and
// nothing is mutated unless all of them pass:
//  1. role and relation to the order (Forbidden)
//  2. current status (IllegalTransition with a reason)
//  3. courier preconditions (IllegalTransition)
//
// Example:
//
//	actor := order.NewActor(restaurantID, user.Restaurant)
//	if err := o.Apply(actor, order.Accept); err != nil {
//	    return err
//	}
func (o *Order) Apply(actor Actor, action Action) error {
	t, ok := getTransitions()[action]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", action))
	}

	if !o.relates(actor, t) {
		return o.forbidden(t.owner)
	}

	if !t.allowsFrom(o.status) {
		return errs.NewIllegalTransitionError("order", o.status.String(), o.refusalReason(t))
	}

	switch action {
	case TakeDelivery:
		if o.courierID != nil {
			return errs.NewIllegalTransitionError("order", o.status.String(), "order is already taken by a courier")
		}
		courierID := actor.ID
		o.courierID = &courierID
	case Delete:
		if o.courierID != nil {
			return errs.NewIllegalTransitionError("order", o.status.String(), "order is already in progress")
		}
	case UnknownAction, Accept, Prepare, PickUp, Deliver:
	}

	if t.target != Unknown {
		o.status = t.target
	}
	return nil
}

func (o *Order) relates(actor Actor, t transition) bool {
	if actor.Role != t.role {
		return false
	}

	switch t.owner {
	case ownerRestaurant:
		return o.restaurantID.IsEqual(actor.ID)
	case ownerClient:
		return o.clientID.IsEqual(actor.ID)
	case ownerAnyCourier:
		return true
	case ownerAssignedCourier:
		return o.IsAssignedTo(actor.ID)
	}
	return false
}

func (o *Order) forbidden(ow owner) error {
	resource := "order " + o.id.String()

	switch ow {
	case ownerRestaurant:
		return errs.NewForbiddenError(resource, "restaurant "+o.restaurantID.String())
	case ownerClient:
		return errs.NewForbiddenError(resource, "client "+o.clientID.String())
	case ownerAnyCourier:
		return errs.NewForbiddenError(resource, "couriers")
	case ownerAssignedCourier:
		if o.courierID == nil {
			return errs.NewForbiddenError(resource, "no assigned courier")
		}
		return errs.NewForbiddenError(resource, "courier "+o.courierID.String())
	}
	return errs.NewForbiddenError(resource, "another user")
}

// refusalReason distinguishes "already at or past" from "not yet ready".
func (o *Order) refusalReason(t transition) string {
	if o.status == Deleted {
		return "order has been deleted"
	}

	latest := t.from[len(t.from)-1]
	if o.status > latest {
		return "order is already " + o.status.describe()
	}
	return "order is not " + latest.describe() + " yet"
}

func (t transition) allowsFrom(s Status) bool {
	for _, from := range t.from {
		if from == s {
			return true
		}
	}
	return false
}
