package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// SessionPolicy holds the lifetime of each token kind.
type SessionPolicy struct {
	AccessLifetime  time.Duration
	RefreshLifetime time.Duration
}

// Validate requires both lifetimes to be positive.
func (p SessionPolicy) Validate() error {
	var accessErr, refreshErr error
	if p.AccessLifetime <= 0 {
		accessErr = errs.NewValueIsInvalidErrorWithCause("accessLifetime", fmt.Errorf("%s is not positive", p.AccessLifetime))
	}
	if p.RefreshLifetime <= 0 {
		refreshErr = errs.NewValueIsInvalidErrorWithCause("refreshLifetime", fmt.Errorf("%s is not positive", p.RefreshLifetime))
	}
	return errors.Join(accessErr, refreshErr)
}

// issueSession mints an access/refresh pair for u and records both in the allow-list.
func issueSession(
	ctx context.Context,
	tokens ports.TokenRepository,
	codec ports.TokenCodec,
	policy SessionPolicy,
	u *user.User,
) (token.Pair, error) {
	access, err := issueToken(ctx, tokens, codec, token.Access, u, policy.AccessLifetime)
	if err != nil {
		return token.Pair{}, err
	}

	refresh, err := issueToken(ctx, tokens, codec, token.Refresh, u, policy.RefreshLifetime)
	if err != nil {
		return token.Pair{}, err
	}

	return token.Pair{Access: access, Refresh: refresh}, nil
}

func issueToken(
	ctx context.Context,
	tokens ports.TokenRepository,
	codec ports.TokenCodec,
	kind token.Kind,
	u *user.User,
	lifetime time.Duration,
) (*token.Token, error) {
	value, expireAt, err := codec.Issue(kind, u.ID(), u.Role(), lifetime)
	if err != nil {
		return nil, err
	}

	t, err := token.NewToken(value, kind, u.ID(), expireAt)
	if err != nil {
		return nil, err
	}

	if err = tokens.Add(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// conflictingFields names every unique field of candidate already held by
// another user. self is skipped so a profile update can keep its own values.
func conflictingFields(existing []*user.User, self *user.User, email, phone string) []string {
	var emailTaken, phoneTaken bool
	for _, other := range existing {
		if self != nil && other.IsEqual(self) {
			continue
		}
		if other.Email() == user.NormalizeEmail(email) {
			emailTaken = true
		}
		if other.Phone() == phone {
			phoneTaken = true
		}
	}

	var fields []string
	if emailTaken {
		fields = append(fields, "email")
	}
	if phoneTaken {
		fields = append(fields, "phone")
	}
	return fields
}
