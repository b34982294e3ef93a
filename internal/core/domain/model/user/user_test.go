package user_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("normalizes email and keeps fields", func(t *testing.T) {
		id := kernel.NewUUID()
		u, err := user.NewUser(id, " Ann ", "  Ann@Example.COM ", "+100", "hash", user.Client, time.Now())

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, id, u.ID())
		assert.Equal(t, "Ann", u.Name())
		assert.Equal(t, "ann@example.com", u.Email())
		assert.Equal(t, "+100", u.Phone())
		assert.Equal(t, "hash", u.PasswordHash())
		assert.Equal(t, user.Client, u.Role())
		assert.Equal(t, time.UTC, u.CreatedAt().Location())
	})

	t.Run("joins every validation error", func(t *testing.T) {
		_, err := user.NewUser(kernel.UUID{}, "", "not-an-email", "", "", user.UnknownRole, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Ann", "ann@example.com", "+100", "hash", user.Courier, time.Now())
	require.NoError(t, err)

	t.Run("replaces contact details", func(t *testing.T) {
		require.NoError(t, u.UpdateProfile("Anna", "ANNA@example.com", "+200"))
		assert.Equal(t, "Anna", u.Name())
		assert.Equal(t, "anna@example.com", u.Email())
		assert.Equal(t, "+200", u.Phone())
	})

	t.Run("invalid input leaves user unchanged", func(t *testing.T) {
		err := u.UpdateProfile("Bob", "broken", "+300")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Anna", u.Name())
		assert.Equal(t, "+200", u.Phone())
	})
}

func TestRole(t *testing.T) {
	t.Run("parse is case insensitive", func(t *testing.T) {
		r, err := user.ParseRole("restaurant")
		require.NoError(t, err)
		assert.Equal(t, user.Restaurant, r)
		assert.Equal(t, "RESTAURANT", r.String())
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := user.ParseRole("chef")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = user.ParseRole("UNKNOWN")
		require.Error(t, err)
	})

	t.Run("admin cannot self register", func(t *testing.T) {
		assert.True(t, user.Client.CanSelfRegister())
		assert.True(t, user.Restaurant.CanSelfRegister())
		assert.True(t, user.Courier.CanSelfRegister())
		assert.False(t, user.Admin.CanSelfRegister())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, user.Admin.Validate())
		require.Error(t, user.UnknownRole.Validate())
		require.Error(t, user.Role(42).Validate())
		assert.Equal(t, "UNKNOWN", user.Role(42).String())
	})
}
