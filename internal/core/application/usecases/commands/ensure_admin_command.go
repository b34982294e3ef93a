package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrEnsureAdminCommandIsNotConstructed = errors.New(
	"EnsureAdminCommand must be created via NewEnsureAdminCommand constructor",
)

// EnsureAdminCommand provisions the administrator account from configuration.
type EnsureAdminCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	phone    string
	password string

	guard guard.ConstructorGuard
}

func NewEnsureAdminCommand(userID kernel.UUID, name, email, phone, password string) (EnsureAdminCommand, error) {
	cmd := EnsureAdminCommand{
		userID:   userID,
		name:     strings.TrimSpace(name),
		email:    user.NormalizeEmail(email),
		phone:    strings.TrimSpace(phone),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userID.Validate(),
		required("name", cmd.name),
		required("email", cmd.email),
		required("phone", cmd.phone),
		required("password", cmd.password),
	); err != nil {
		return EnsureAdminCommand{}, err
	}

	return cmd, nil
}

func (c EnsureAdminCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminCommandIsNotConstructed)
}

func (c EnsureAdminCommand) UserID() kernel.UUID {
	return c.userID
}

func (c EnsureAdminCommand) Name() string {
	return c.name
}

func (c EnsureAdminCommand) Email() string {
	return c.email
}

func (c EnsureAdminCommand) Phone() string {
	return c.phone
}

func (c EnsureAdminCommand) Password() string {
	return c.password
}
