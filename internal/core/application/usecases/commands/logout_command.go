package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New("LogoutCommand must be created via NewLogoutCommand constructor")

// LogoutCommand revokes every token the user holds.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewLogoutCommand(userID kernel.UUID) (LogoutCommand, error) {
	if err := userID.Validate(); err != nil {
		return LogoutCommand{}, err
	}

	return LogoutCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) UserID() kernel.UUID {
	return c.userID
}
