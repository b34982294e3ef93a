// Package queries contains read operations. Handlers return read models shaped
// for the HTTP adapter and never change state.
package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery resolves a bearer access token into the principal it was
// issued to.
type AuthenticateQuery struct {
	token string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(token string) (AuthenticateQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return AuthenticateQuery{}, errs.ErrUnauthenticated
	}

	return AuthenticateQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

func (q AuthenticateQuery) Token() string {
	return q.token
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    kernel.UUID
	Role  user.Role
	Name  string
	Email string
}

// Actor narrows the principal to what the order workflow needs.
func (p Principal) Actor() order.Actor {
	return order.NewActor(p.ID, p.Role)
}
