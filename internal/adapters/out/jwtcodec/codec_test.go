package jwtcodec_test

import (
	"strings"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/jwtcodec"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T) *jwtcodec.Codec {
	t.Helper()
	codec, err := jwtcodec.NewCodec([]byte("access-secret"), []byte("refresh-secret"))
	require.NoError(t, err)
	return codec
}

func TestNewCodec(t *testing.T) {
	_, err := jwtcodec.NewCodec(nil, []byte("x"))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = jwtcodec.NewCodec([]byte("same"), []byte("same"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newCodec(t)

	for range 20 {
		subject := kernel.NewUUID()

		value, expireAt, err := codec.Issue(token.Access, subject, user.Courier, 15*time.Minute)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), expireAt, 2*time.Second)

		require.True(t, codec.Verify(token.Access, value))

		got, err := codec.ExtractSubjectID(value)
		require.NoError(t, err)
		assert.Equal(t, subject, got)
	}
}

func TestCodec_Claims(t *testing.T) {
	codec := newCodec(t)
	subject := kernel.NewUUID()

	value, _, err := codec.Issue(token.Refresh, subject, user.Restaurant, time.Hour)
	require.NoError(t, err)

	var claims jwtcodec.Claims
	_, _, err = jwt.NewParser().ParseUnverified(value, &claims)
	require.NoError(t, err)

	assert.Equal(t, subject.String(), claims.Subject)
	assert.Equal(t, "RESTAURANT", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestCodec_TokensMintedTogetherDiffer(t *testing.T) {
	codec := newCodec(t)
	subject := kernel.NewUUID()

	first, _, err := codec.Issue(token.Access, subject, user.Client, time.Hour)
	require.NoError(t, err)
	second, _, err := codec.Issue(token.Access, subject, user.Client, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCodec_VerifyFailsClosed(t *testing.T) {
	codec := newCodec(t)
	subject := kernel.NewUUID()

	access, _, err := codec.Issue(token.Access, subject, user.Client, time.Hour)
	require.NoError(t, err)
	refresh, _, err := codec.Issue(token.Refresh, subject, user.Client, time.Hour)
	require.NoError(t, err)
	expired, _, err := codec.Issue(token.Access, subject, user.Client, -time.Minute)
	require.NoError(t, err)

	other, err := jwtcodec.NewCodec([]byte("other-access"), []byte("other-refresh"))
	require.NoError(t, err)
	foreign, _, err := other.Issue(token.Access, subject, user.Client, time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   subject.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(access, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	testCases := []struct {
		name  string
		kind  token.Kind
		value string
	}{
		{"access token checked as refresh", token.Refresh, access},
		{"refresh token checked as access", token.Access, refresh},
		{"expired", token.Access, expired},
		{"foreign secret", token.Access, foreign},
		{"alg none", token.Access, none},
		{"tampered payload", token.Access, tampered},
		{"garbage", token.Access, "not.a.jwt"},
		{"empty", token.Access, ""},
		{"unknown kind", token.UnknownKind, access},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, codec.Verify(tc.kind, tc.value))
			})
		})
	}

	assert.True(t, codec.Verify(token.Refresh, refresh))
}

func TestCodec_ExtractSubjectID_Malformed(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.ExtractSubjectID("garbage")
	require.ErrorIs(t, err, errs.ErrInvalidToken)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "42"}).
		SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = codec.ExtractSubjectID(noSubject)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestCodec_Issue_Invalid(t *testing.T) {
	codec := newCodec(t)

	_, _, err := codec.Issue(token.UnknownKind, kernel.NewUUID(), user.Client, time.Hour)
	require.Error(t, err)

	_, _, err = codec.Issue(token.Access, kernel.UUID{}, user.Client, time.Hour)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
