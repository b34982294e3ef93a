// Package commands contains business operations that modify system state.
// Every command is a constructor-validated value handled inside one unit of
// work: validate, begin, load, mutate through the domain, persist, commit.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	TokenRepoFactory interface {
		TokenRepository() ports.TokenRepository
	}

	// UserUoW is used by registration and profile changes.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// SessionUoW is used by login and refresh, which read users and write tokens.
	SessionUoW interface {
		TxManager
		UserRepoFactory
		TokenRepoFactory
	}

	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// TokenUoW is used by logout and the expiry sweep.
	TokenUoW interface {
		TxManager
		TokenRepoFactory
	}

	TokenUoWFactory interface {
		Create() TokenUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderUoW is used by lifecycle transitions, which only touch the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans orders and the users and menu items they reference. Used by
	// order creation and the administrative override.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   restaurant, err := uow.UserRepository().Get(ctx, restaurantID)
	//   items, err := uow.MenuRepository().GetMany(ctx, ids)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		OrderRepoFactory
		MenuRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
