package commands_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

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

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
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

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Matches(hash, raw string) bool {
	return m.Called(hash, raw).Bool(0)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) TokenRepository() ports.TokenRepository {
	return m.Called().Get(0).(ports.TokenRepository)
}

// MockUoWFactory hands out a MockUoW typed as whichever unit of work T the
// handler under test expects.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

func newFactory[T any](uow T) *MockUoWFactory[T] {
	factory := new(MockUoWFactory[T])
	factory.On("Create").Return(uow).Once()
	return factory
}

func mustUser(role user.Role) *user.User {
	id := kernel.NewUUID()
	u, err := user.NewUser(id, "Test", id.String()[:8]+"@example.com", "+"+id.String()[:8], "hash", role, time.Now())
	if err != nil {
		panic(err)
	}
	return u
}

func mustMoney(cents int64) kernel.Money {
	m, err := kernel.NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func mustOrder(restaurantID kernel.UUID) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Soup", mustMoney(500), 1)
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), restaurantID, "1 Main St", []*order.Item{item}, time.Now())
	if err != nil {
		panic(err)
	}
	return o
}
