package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand replaces the caller's name, email and phone.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	email  string
	phone  string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(userID kernel.UUID, name, email, phone string) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		userID: userID,
		name:   strings.TrimSpace(name),
		email:  user.NormalizeEmail(email),
		phone:  strings.TrimSpace(phone),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userID.Validate(),
		required("name", cmd.name),
		required("email", cmd.email),
		required("phone", cmd.phone),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateProfileCommand) Name() string {
	return c.name
}

func (c UpdateProfileCommand) Email() string {
	return c.email
}

func (c UpdateProfileCommand) Phone() string {
	return c.phone
}
