package commands

import (
	"context"
)

// LogoutCommandHandler deletes every allow-list row of the user. Tokens that
// still verify cryptographically stop authenticating on their next use.
type LogoutCommandHandler struct {
	uowFactory TokenUoWFactory
}

func NewLogoutCommandHandler(uowFactory TokenUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.TokenRepository().DeleteAllByOwner(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
