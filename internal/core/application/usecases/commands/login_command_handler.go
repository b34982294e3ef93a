package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// LoginCommandHandler verifies credentials and opens a session.
//
// Example:
//
//	cmd, _ := NewLoginCommand("ann@example.com", "s3cret-pass")
//	pair, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrUnauthenticated) {
//	    // unknown email and wrong password look the same
//	}
type LoginCommandHandler struct {
	uowFactory SessionUoWFactory
	hasher     ports.PasswordHasher
	codec      ports.TokenCodec
	policy     SessionPolicy
}

func NewLoginCommandHandler(
	uowFactory SessionUoWFactory,
	hasher ports.PasswordHasher,
	codec ports.TokenCodec,
	policy SessionPolicy,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		codec:      codec,
		policy:     policy,
	}
}

func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (token.Pair, error) {
	if err := cmd.Validate(); err != nil {
		return token.Pair{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return token.Pair{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return token.Pair{}, errs.ErrInvalidCredentials
	}
	if err != nil {
		return token.Pair{}, err
	}

	if !h.hasher.Matches(u.PasswordHash(), cmd.Password()) {
		return token.Pair{}, errs.ErrInvalidCredentials
	}

	pair, err := issueSession(ctx, uow.TokenRepository(), h.codec, h.policy, u)
	if err != nil {
		return token.Pair{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return token.Pair{}, err
	}

	return pair, nil
}
