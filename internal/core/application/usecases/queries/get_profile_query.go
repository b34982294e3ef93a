package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

type GetProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

// ProfileView never carries the password hash.
type ProfileView struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Role      user.Role
	CreatedAt time.Time
}
