package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// RefreshTokensCommandHandler rotates a session. The presented refresh token
// must verify and still be on the allow-list; it is consumed by the rotation,
// so presenting it a second time fails.
type RefreshTokensCommandHandler struct {
	uowFactory SessionUoWFactory
	codec      ports.TokenCodec
	policy     SessionPolicy
}

func NewRefreshTokensCommandHandler(
	uowFactory SessionUoWFactory,
	codec ports.TokenCodec,
	policy SessionPolicy,
) RefreshTokensCommandHandler {
	return RefreshTokensCommandHandler{
		uowFactory: uowFactory,
		codec:      codec,
		policy:     policy,
	}
}

func (h *RefreshTokensCommandHandler) Handle(ctx context.Context, cmd RefreshTokensCommand) (token.Pair, error) {
	if err := cmd.Validate(); err != nil {
		return token.Pair{}, err
	}

	// Signature and expiry are checked before touching storage.
	if !h.codec.Verify(token.Refresh, cmd.RefreshToken()) {
		return token.Pair{}, errs.ErrInvalidToken
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return token.Pair{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tokenRepo := uow.TokenRepository()
	stored, err := tokenRepo.Get(ctx, cmd.RefreshToken(), token.Refresh)
	if err != nil {
		return token.Pair{}, asInvalidToken(err)
	}

	// The owner comes from the allow-list row, not from the token body.
	owner, err := uow.UserRepository().Get(ctx, stored.OwnerID())
	if err != nil {
		return token.Pair{}, asInvalidToken(err)
	}

	if err = tokenRepo.Delete(ctx, stored.Value(), token.Refresh); err != nil {
		return token.Pair{}, asInvalidToken(err)
	}

	pair, err := issueSession(ctx, tokenRepo, h.codec, h.policy, owner)
	if err != nil {
		return token.Pair{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return token.Pair{}, err
	}

	return pair, nil
}

func asInvalidToken(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.ErrInvalidToken
	}
	return err
}
