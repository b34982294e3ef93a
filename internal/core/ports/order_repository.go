package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its items.
type OrderRepository interface {
	// Add persists a new order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status, courier and total price back, but only if the stored
	// version still equals aggregate.Version(). A lost race returns
	// errs.ErrVersionIsInvalid and writes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
