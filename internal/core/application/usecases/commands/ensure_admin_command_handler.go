package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// EnsureAdminCommandHandler creates the administrator on first start. It is
// idempotent: an existing administrator with the same email is left alone.
type EnsureAdminCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewEnsureAdminCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) EnsureAdminCommandHandler {
	return EnsureAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle reports whether an account was created.
func (h *EnsureAdminCommandHandler) Handle(ctx context.Context, cmd EnsureAdminCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil && existing.Role() == user.Admin:
		return false, nil
	case err == nil:
		return false, errs.NewDuplicateFieldError("user", "email")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return false, err
	}

	conflicts, err := userRepo.FindConflicting(ctx, cmd.Email(), cmd.Phone())
	if err != nil {
		return false, err
	}
	if fields := conflictingFields(conflicts, nil, cmd.Email(), cmd.Phone()); len(fields) > 0 {
		return false, errs.NewDuplicateFieldError("user", fields...)
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return false, fmt.Errorf("hash administrator password: %w", err)
	}

	admin, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), hash, user.Admin, time.Now())
	if err != nil {
		return false, err
	}

	if err = userRepo.Add(ctx, admin); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
