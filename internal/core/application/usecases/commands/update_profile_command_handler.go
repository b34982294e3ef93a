package commands

import (
	"context"

	"fooddelivery/internal/pkg/errs"
)

// UpdateProfileCommandHandler applies the same per-field uniqueness rules as
// registration, ignoring the user's own current values.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	existing, err := userRepo.FindConflicting(ctx, cmd.Email(), cmd.Phone())
	if err != nil {
		return err
	}
	if fields := conflictingFields(existing, u, cmd.Email(), cmd.Phone()); len(fields) > 0 {
		return errs.NewDuplicateFieldError("user", fields...)
	}

	if err = u.UpdateProfile(cmd.Name(), cmd.Email(), cmd.Phone()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
