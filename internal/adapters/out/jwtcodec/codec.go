// Package jwtcodec signs and verifies HS256 JSON Web Tokens for the two token
// kinds. Access and refresh tokens use independent secrets, so leaking one
// secret never allows forging the other kind.
package jwtcodec

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrSecretIsRequired  = errs.NewValueIsRequiredError("token signing secret")
	ErrSecretsMustDiffer = errs.NewValueIsInvalidError("access and refresh secrets must differ")
)

// Claims is the payload of every issued token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec implements ports.TokenCodec.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

// NewCodec builds a codec from two distinct, non-empty secrets.
//
// Example:
//
//	codec, err := jwtcodec.NewCodec([]byte(cfg.AccessTokenSecret), []byte(cfg.RefreshTokenSecret))
func NewCodec(accessSecret, refreshSecret []byte) (*Codec, error) {
	if len(accessSecret) == 0 || len(refreshSecret) == 0 {
		return nil, ErrSecretIsRequired
	}
	if bytes.Equal(accessSecret, refreshSecret) {
		return nil, ErrSecretsMustDiffer
	}

	return &Codec{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		now:           time.Now,
	}, nil
}

// Issue signs a token carrying sub, role, iat, exp and a random jti. The jti
// keeps two tokens minted within the same second distinct in the allow-list.
func (c *Codec) Issue(kind token.Kind, subject kernel.UUID, role user.Role, lifetime time.Duration) (string, time.Time, error) {
	secret, err := c.secret(kind)
	if err != nil {
		return "", time.Time{}, err
	}
	if err = subject.Validate(); err != nil {
		return "", time.Time{}, err
	}

	issuedAt := c.now().UTC()
	expireAt := issuedAt.Add(lifetime)

	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expireAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign %s token: %w", kind, err)
	}

	// exp is serialized with second precision.
	return signed, claims.ExpiresAt.Time.UTC(), nil
}

// Verify validates signature, algorithm and expiry with the secret of kind.
// It never panics or returns an error: every failure is false.
func (c *Codec) Verify(kind token.Kind, value string) bool {
	secret, err := c.secret(kind)
	if err != nil || value == "" {
		return false
	}

	parsed, err := jwt.ParseWithClaims(value, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	return err == nil && parsed.Valid
}

// ExtractSubjectID reads sub without checking the signature. Call it only
// after Verify has accepted the token.
func (c *Codec) ExtractSubjectID(value string) (kernel.UUID, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(value, &claims); err != nil {
		return kernel.UUID{}, errors.Join(errs.ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errors.Join(errs.ErrInvalidToken, err)
	}
	if err = id.Validate(); err != nil {
		return kernel.UUID{}, errors.Join(errs.ErrInvalidToken, err)
	}
	return id, nil
}

func (c *Codec) secret(kind token.Kind) ([]byte, error) {
	switch kind {
	case token.Access:
		return c.accessSecret, nil
	case token.Refresh:
		return c.refreshSecret, nil
	case token.UnknownKind:
	}
	return nil, kind.Validate()
}
