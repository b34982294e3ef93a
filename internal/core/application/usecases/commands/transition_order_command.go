package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to move an order one step along its lifecycle
// on behalf of actor. The client, restaurant and courier surfaces only differ
// in the action they put here.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	action  order.Action

	guard guard.ConstructorGuard
}

func NewTransitionOrderCommand(orderID kernel.UUID, actor order.Actor, action order.Action) (TransitionOrderCommand, error) {
	var actionErr error
	if action == order.UnknownAction {
		actionErr = errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%s is not a lifecycle action", action))
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.ID.Validate(),
		actor.Role.Validate(),
		actionErr,
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		actor:   actor,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c TransitionOrderCommand) Action() order.Action {
	return c.action
}
