package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPolicy = commands.SessionPolicy{AccessLifetime: 15 * time.Minute, RefreshLifetime: 14 * 24 * time.Hour}

func TestSessionPolicy_Validate(t *testing.T) {
	require.NoError(t, testPolicy.Validate())

	err := commands.SessionPolicy{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accessLifetime")
	assert.Contains(t, err.Error(), "refreshLifetime")
}

func TestLoginCommandHandler_Handle_IssuesAndRecordsBothTokens(t *testing.T) {
	ctx := t.Context()
	u := mustUser(user.Restaurant)
	cmd, _ := commands.NewLoginCommand(u.Email(), "secret")
	accessExp := time.Now().Add(testPolicy.AccessLifetime)
	refreshExp := time.Now().Add(testPolicy.RefreshLifetime)

	users := new(MockUserRepository)
	tokens := new(MockTokenRepository)
	hasher := new(MockPasswordHasher)
	codec := new(MockTokenCodec)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("GetByEmail", ctx, u.Email()).Return(u, nil).Once(),
		hasher.On("Matches", "hash", "secret").Return(true).Once(),
		uow.On("TokenRepository").Return(tokens).Once(),
		codec.On("Issue", token.Access, u.ID(), user.Restaurant, testPolicy.AccessLifetime).Return("access", accessExp, nil).Once(),
		tokens.On("Add", ctx, mock.MatchedBy(func(tk *token.Token) bool { return tk.Kind() == token.Access })).Return(nil).Once(),
		codec.On("Issue", token.Refresh, u.ID(), user.Restaurant, testPolicy.RefreshLifetime).Return("refresh", refreshExp, nil).Once(),
		tokens.On("Add", ctx, mock.MatchedBy(func(tk *token.Token) bool { return tk.Kind() == token.Refresh })).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewLoginCommandHandler(newFactory[commands.SessionUoW](uow), hasher, codec, testPolicy)
	pair, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "access", pair.Access.Value())
	assert.Equal(t, "refresh", pair.Refresh.Value())
	assert.Equal(t, u.ID(), pair.Refresh.OwnerID())
	assert.WithinDuration(t, refreshExp, pair.Refresh.ExpireAt(), time.Millisecond)
	tokens.AssertExpectations(t)
	codec.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	ctx := t.Context()
	u := mustUser(user.Client)

	unknown := func() error {
		users := new(MockUserRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(users).Once()
		users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, errs.NewObjectNotFoundError("user", "nobody@example.com")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, _ := commands.NewLoginCommand("nobody@example.com", "secret")
		h := commands.NewLoginCommandHandler(newFactory[commands.SessionUoW](uow), new(MockPasswordHasher), new(MockTokenCodec), testPolicy)
		_, err := h.Handle(ctx, cmd)
		return err
	}

	wrongPassword := func() error {
		users := new(MockUserRepository)
		hasher := new(MockPasswordHasher)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(users).Once()
		users.On("GetByEmail", ctx, u.Email()).Return(u, nil).Once()
		hasher.On("Matches", "hash", "wrong").Return(false).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, _ := commands.NewLoginCommand(u.Email(), "wrong")
		h := commands.NewLoginCommandHandler(newFactory[commands.SessionUoW](uow), hasher, new(MockTokenCodec), testPolicy)
		_, err := h.Handle(ctx, cmd)
		return err
	}

	first, second := unknown(), wrongPassword()
	require.ErrorIs(t, first, errs.ErrUnauthenticated)
	require.ErrorIs(t, second, errs.ErrUnauthenticated)
	assert.Equal(t, first.Error(), second.Error())
}
