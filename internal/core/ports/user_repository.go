package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error

	// Get retrieves a user by identifier, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail looks up the normalized email, or returns errs.ErrObjectNotFound.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// FindConflicting returns every user already holding email or phone.
	// Used to report each colliding unique field at once.
	FindConflicting(ctx context.Context, email, phone string) ([]*user.User, error)
}
