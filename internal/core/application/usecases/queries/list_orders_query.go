package queries

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// OrderScope selects which orders a listing covers.
type OrderScope int

const (
	UnknownScope OrderScope = iota
	// ScopeMine lists the orders the actor is party to.
	ScopeMine
	// ScopeAvailable lists unassigned open orders a courier may take.
	ScopeAvailable
	// ScopeAll lists every order. Administrators only.
	ScopeAll
)

func (s OrderScope) String() string {
	switch s {
	case ScopeMine:
		return "mine"
	case ScopeAvailable:
		return "available"
	case ScopeAll:
		return "all"
	case UnknownScope:
	}
	return "unknown"
}

func ParseOrderScope(s string) (OrderScope, error) {
	for _, scope := range []OrderScope{ScopeMine, ScopeAvailable, ScopeAll} {
		if strings.EqualFold(strings.TrimSpace(s), scope.String()) {
			return scope, nil
		}
	}
	return UnknownScope, errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("%q is not a valid scope", s))
}

// ListOrdersQuery pages through the orders in scope for actor, newest first.
// Pages start at 1.
type ListOrdersQuery struct {
	actor order.Actor
	scope OrderScope
	page  int
	size  int

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor order.Actor, scope OrderScope, page, size int) (ListOrdersQuery, error) {
	var scopeErr, pageErr, sizeErr, roleErr error

	switch scope {
	case ScopeMine:
		if actor.Role == user.Admin {
			roleErr = errs.NewForbiddenError("orders in scope "+scope.String(), "clients, restaurants and couriers")
		}
	case ScopeAvailable:
		if actor.Role != user.Courier {
			roleErr = errs.NewForbiddenError("orders in scope "+scope.String(), "couriers")
		}
	case ScopeAll:
		if actor.Role != user.Admin {
			roleErr = errs.NewForbiddenError("orders in scope "+scope.String(), "administrators")
		}
	case UnknownScope:
		scopeErr = errs.NewValueIsRequiredError("scope")
	default:
		scopeErr = errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("%d is not a valid scope", scope))
	}

	if page < 1 {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		sizeErr = errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}

	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate(), scopeErr, pageErr, sizeErr); err != nil {
		return ListOrdersQuery{}, err
	}
	if roleErr != nil {
		return ListOrdersQuery{}, roleErr
	}

	return ListOrdersQuery{
		actor: actor,
		scope: scope,
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() order.Actor {
	return q.actor
}

func (q ListOrdersQuery) Scope() OrderScope {
	return q.scope
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q ListOrdersQuery) Size() int {
	return q.size
}

// ListOrdersQueryResponse is one page of orders. Total counts every order in
// scope, not just this page.
type ListOrdersQueryResponse struct {
	Items []OrderView
	Page  int
	Size  int
	Total int64
}
