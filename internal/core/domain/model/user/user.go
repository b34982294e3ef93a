package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the aggregate root owning issued tokens and, for restaurants, menu items.
//
// Invariants:
//   - email is unique, trimmed and lower-cased
//   - phone is unique
//   - password holds a hash, never the raw password
//   - role never changes once the user exists
type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a user from already hashed credentials.
//
// Example:
//
//	hash, _ := hasher.Hash(rawPassword)
//	u, err := user.NewUser(kernel.NewUUID(), "Ann", "ann@example.com", "+100200300", hash, user.Client, time.Now())
func NewUser(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPhone(phone),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user. It applies the same validation as NewUser.
func RestoreUser(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	return NewUser(id, name, email, phone, passwordHash, role, createdAt)
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

// Email returns the normalized email address.
func (u *User) Email() string {
	return u.email
}

func (u *User) Phone() string {
	return u.phone
}

// PasswordHash returns the stored hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// IsEqual compares users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// UpdateProfile replaces the contact details. Uniqueness of email and phone
// is checked by the caller against the repository.
func (u *User) UpdateProfile(name, email, phone string) error {
	next := *u
	if err := errors.Join(
		next.setName(name),
		next.setEmail(email),
		next.setPhone(phone),
	); err != nil {
		return err
	}

	*u = next
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if at := strings.IndexByte(email, '@'); at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	u.phone = phone
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
