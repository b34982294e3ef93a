package commands

import (
	"context"
)

// SweepExpiredTokensCommandHandler is routine cleanup. Authentication never
// depends on it: an expired token already fails its own expiry check.
type SweepExpiredTokensCommandHandler struct {
	uowFactory TokenUoWFactory
}

func NewSweepExpiredTokensCommandHandler(uowFactory TokenUoWFactory) SweepExpiredTokensCommandHandler {
	return SweepExpiredTokensCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of rows removed.
func (h *SweepExpiredTokensCommandHandler) Handle(ctx context.Context, cmd SweepExpiredTokensCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.TokenRepository().DeleteExpired(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
