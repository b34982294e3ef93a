package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// RegisterUserCommandHandler creates an account after checking that neither
// email nor phone is taken. No token is issued at registration.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle reports every colliding field at once in a DuplicateFieldError.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
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
	existing, err := userRepo.FindConflicting(ctx, cmd.Email(), cmd.Phone())
	if err != nil {
		return err
	}
	if fields := conflictingFields(existing, nil, cmd.Email(), cmd.Phone()); len(fields) > 0 {
		return errs.NewDuplicateFieldError("user", fields...)
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), hash, cmd.Role(), time.Now())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
