package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/guard"
)

var ErrRefreshTokensCommandIsNotConstructed = errors.New(
	"RefreshTokensCommand must be created via NewRefreshTokensCommand constructor",
)

// RefreshTokensCommand trades a refresh token for a new pair.
type RefreshTokensCommand struct { //nolint:recvcheck //using for validation
	refreshToken string

	guard guard.ConstructorGuard
}

func NewRefreshTokensCommand(refreshToken string) (RefreshTokensCommand, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if err := required("refreshToken", refreshToken); err != nil {
		return RefreshTokensCommand{}, err
	}

	return RefreshTokensCommand{
		refreshToken: refreshToken,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshTokensCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokensCommandIsNotConstructed)
}

func (c RefreshTokensCommand) RefreshToken() string {
	return c.refreshToken
}
