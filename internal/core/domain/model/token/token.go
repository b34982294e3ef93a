// Package token models the allow-list entry of an issued credential.
//
// A signed token is only honored while a Token row with the same value and
// kind exists. Logout and the periodic sweep remove rows; nothing removes a
// single access token on its own.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrTokenIsNotConstructed = errors.New("Token must be created via NewToken constructor")

// Kind separates access tokens from refresh tokens. Each kind is signed with
// its own secret and has its own lifetime.
type Kind int

const (
	UnknownKind Kind = iota
	Access
	Refresh
)

func (k Kind) String() string {
	switch k {
	case Access:
		return "ACCESS"
	case Refresh:
		return "REFRESH"
	case UnknownKind:
	}
	return "UNKNOWN"
}

func (k Kind) Validate() error {
	if k != Access && k != Refresh {
		return errs.NewValueIsInvalidErrorWithCause("token kind", fmt.Errorf("%d is not a valid token kind", k))
	}
	return nil
}

// ParseKind maps the persisted name back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "ACCESS":
		return Access, nil
	case "REFRESH":
		return Refresh, nil
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("token kind", fmt.Errorf("%q is not a valid token kind", s))
}

// Token is an issued credential recorded in the allow-list. Two tokens are
// the same entry when value and kind match.
type Token struct {
	value    string
	kind     Kind
	ownerID  kernel.UUID
	expireAt time.Time

	isConstructed bool
}

func NewToken(value string, kind Kind, ownerID kernel.UUID, expireAt time.Time) (*Token, error) {
	t := &Token{
		value:         value,
		kind:          kind,
		ownerID:       ownerID,
		expireAt:      expireAt.UTC(),
		isConstructed: true,
	}

	var valueErr error
	if value == "" {
		valueErr = errs.NewValueIsRequiredError("token")
	}
	var expireErr error
	if expireAt.IsZero() {
		expireErr = errs.NewValueIsRequiredError("expireAt")
	}

	if err := errors.Join(valueErr, kind.Validate(), ownerID.Validate(), expireErr); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Token) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTokenIsNotConstructed
	}
	return nil
}

func (t *Token) Value() string {
	return t.value
}

func (t *Token) Kind() Kind {
	return t.kind
}

func (t *Token) OwnerID() kernel.UUID {
	return t.ownerID
}

func (t *Token) ExpireAt() time.Time {
	return t.expireAt
}

// IsExpired reports whether expireAt lies strictly before asOf, the same
// boundary the sweep uses.
func (t *Token) IsExpired(asOf time.Time) bool {
	return t.expireAt.Before(asOf)
}

// IsEqual compares (value, kind).
func (t *Token) IsEqual(other *Token) bool {
	return other != nil && t.value == other.value && t.kind == other.kind
}

// Pair is what login and refresh hand back to the caller.
type Pair struct {
	Access  *Token
	Refresh *Token
}
