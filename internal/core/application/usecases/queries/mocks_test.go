package queries_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
)

type MockTokenCodec struct{ mock.Mock }

func (m *MockTokenCodec) Issue(kind token.Kind, subject kernel.UUID, role user.Role, lifetime time.Duration) (string, time.Time, error) {
	args := m.Called(kind, subject, role, lifetime)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenCodec) Verify(kind token.Kind, value string) bool {
	return m.Called(kind, value).Bool(0)
}

func (m *MockTokenCodec) ExtractSubjectID(value string) (kernel.UUID, error) {
	args := m.Called(value)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockTokenRepository struct{ mock.Mock }

func (m *MockTokenRepository) Add(ctx context.Context, t *token.Token) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTokenRepository) Exists(ctx context.Context, value string, kind token.Kind) (bool, error) {
	args := m.Called(ctx, value, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) Get(ctx context.Context, value string, kind token.Kind) (*token.Token, error) {
	args := m.Called(ctx, value, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Token), args.Error(1)
}

func (m *MockTokenRepository) Delete(ctx context.Context, value string, kind token.Kind) error {
	return m.Called(ctx, value, kind).Error(0)
}

func (m *MockTokenRepository) DeleteAllByOwner(ctx context.Context, ownerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) DeleteExpired(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindConflicting(ctx context.Context, email, phone string) ([]*user.User, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}
