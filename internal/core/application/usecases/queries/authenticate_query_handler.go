package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// AuthenticateQueryHandler is the per-request gate. A token is accepted only
// when its signature and expiry hold for the ACCESS kind, it is still in the
// allow-list, and its subject still exists. Every failure collapses into
// errs.ErrInvalidToken; storage failures are returned as they are.
type AuthenticateQueryHandler struct {
	codec  ports.TokenCodec
	tokens ports.TokenRepository
	users  ports.UserRepository
}

func NewAuthenticateQueryHandler(
	codec ports.TokenCodec,
	tokens ports.TokenRepository,
	users ports.UserRepository,
) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{codec: codec, tokens: tokens, users: users}
}

func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (Principal, error) {
	if err := query.Validate(); err != nil {
		return Principal{}, err
	}

	if !h.codec.Verify(token.Access, query.Token()) {
		return Principal{}, errs.ErrInvalidToken
	}

	allowed, err := h.tokens.Exists(ctx, query.Token(), token.Access)
	if err != nil {
		return Principal{}, err
	}
	if !allowed {
		return Principal{}, errs.ErrInvalidToken
	}

	subject, err := h.codec.ExtractSubjectID(query.Token())
	if err != nil {
		return Principal{}, errs.ErrInvalidToken
	}

	u, err := h.users.Get(ctx, subject)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Principal{}, errs.ErrInvalidToken
	}
	if err != nil {
		return Principal{}, err
	}

	return Principal{ID: u.ID(), Role: u.Role(), Name: u.Name(), Email: u.Email()}, nil
}
