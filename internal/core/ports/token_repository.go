package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/token"
)

// TokenRepository is the session allow-list. A signed token is honored only
// while a row with the same value and kind exists.
type TokenRepository interface {
	// Add records an issued token.
	Add(ctx context.Context, t *token.Token) error

	// Exists reports whether (value, kind) is still allowed.
	Exists(ctx context.Context, value string, kind token.Kind) (bool, error)

	// Get returns the stored entry, or errs.ErrObjectNotFound.
	Get(ctx context.Context, value string, kind token.Kind) (*token.Token, error)

	// Delete removes a single entry; used to consume a refresh token on rotation.
	Delete(ctx context.Context, value string, kind token.Kind) error

	// DeleteAllByOwner revokes every token of a user and returns how many rows went.
	DeleteAllByOwner(ctx context.Context, ownerID kernel.UUID) (int64, error)

	// DeleteExpired removes rows whose expiry lies strictly before asOf.
	DeleteExpired(ctx context.Context, asOf time.Time) (int64, error)
}
