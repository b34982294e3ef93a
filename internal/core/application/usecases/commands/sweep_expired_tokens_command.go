package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSweepExpiredTokensCommandIsNotConstructed = errors.New(
	"SweepExpiredTokensCommand must be created via NewSweepExpiredTokensCommand constructor",
)

// SweepExpiredTokensCommand removes allow-list rows that expired before asOf.
type SweepExpiredTokensCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewSweepExpiredTokensCommand(asOf time.Time) (SweepExpiredTokensCommand, error) {
	if asOf.IsZero() {
		return SweepExpiredTokensCommand{}, errs.NewValueIsRequiredError("asOf")
	}

	return SweepExpiredTokensCommand{
		asOf:  asOf.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SweepExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredTokensCommandIsNotConstructed)
}

func (c SweepExpiredTokensCommand) AsOf() time.Time {
	return c.asOf
}
