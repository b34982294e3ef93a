package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrOverrideOrderCommandIsNotConstructed = errors.New(
	"OverrideOrderCommand must be created via NewOverrideOrderCommand constructor",
)

// OverrideOrderCommand is an administrative correction that bypasses the
// transition table.
type OverrideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   order.OverridePatch

	guard guard.ConstructorGuard
}

// NewOverrideOrderCommand requires at least one change in patch.
func NewOverrideOrderCommand(orderID kernel.UUID, patch order.OverridePatch) (OverrideOrderCommand, error) {
	var patchErr error
	if patch.Status == nil && patch.TotalPrice == nil && patch.CourierID == nil && !patch.UnassignCourier {
		patchErr = errs.NewValueIsRequiredError("status, totalPrice or courier")
	}

	if err := errors.Join(orderID.Validate(), patchErr); err != nil {
		return OverrideOrderCommand{}, err
	}

	return OverrideOrderCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideOrderCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderCommandIsNotConstructed)
}

func (c OverrideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c OverrideOrderCommand) Patch() order.OverridePatch {
	return c.patch
}
