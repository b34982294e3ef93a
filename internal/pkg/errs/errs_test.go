package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessagesAndSentinels(t *testing.T) {
	cause := errors.New("row changed by another writer")

	tests := []struct {
		name     string
		err      error
		message  string
		sentinel error
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("order", "42"),
			message:  "object not found: 42",
			sentinel: errs.ErrObjectNotFound,
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("menuItem", "7", errors.New("no rows")),
			message:  "object not found: param is: menuItem, ID is: 7 (cause: no rows)",
			sentinel: errs.ErrObjectNotFound,
		},
		{
			name:     "invalid email",
			err:      errs.NewValueIsInvalidError("email"),
			message:  "value is invalid: email",
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "invalid role with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("role", errors.New(`"ROOT" is not a valid role`)),
			message:  `value is invalid: role (cause: "ROOT" is not a valid role)`,
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "quantity out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 1000",
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "price out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("price", -5, 0, 100, errors.New("negative")),
			message:  "value is invalid: -5 is price, min value is 0, max value is 100 (cause: negative)",
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "missing address",
			err:      errs.NewValueIsRequiredError("deliveryAddress"),
			message:  "value is required: deliveryAddress",
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "stale order version",
			err:      errs.NewVersionIsInvalidErrorWithCause("order", cause),
			message:  "version is invalid: order (cause: row changed by another writer)",
			sentinel: errs.ErrVersionIsInvalid,
		},
		{
			name:     "foreign order",
			err:      errs.NewForbiddenError("order 42", "client 7"),
			message:  "access is forbidden: order 42 belongs to client 7",
			sentinel: errs.ErrForbidden,
		},
		{
			name:     "delivered twice",
			err:      errs.NewIllegalTransitionError("order", "COMPLETED", "order is already completed"),
			message:  "transition is illegal: order is COMPLETED, order is already completed",
			sentinel: errs.ErrIllegalTransition,
		},
		{
			name:     "email and phone taken",
			err:      errs.NewDuplicateFieldError("user", "email", "phone"),
			message:  "value is already taken: user with this email, phone already exists",
			sentinel: errs.ErrDuplicateField,
		},
		{
			name:     "duplicate without fields",
			err:      errs.NewDuplicateFieldError("user"),
			message:  "value is already taken: user already exists",
			sentinel: errs.ErrDuplicateField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("handler: %w", tt.err), tt.sentinel)
		})
	}
}

func TestOutOfRangeMessageStaysOnOneLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("title", "soup\nof the day", 1, 255)

	assert.Contains(t, err.Error(), "soup of the day")
	assert.NotContains(t, err.Error(), "\n")
}

func TestAuthenticationErrors(t *testing.T) {
	require.ErrorIs(t, errs.ErrInvalidCredentials, errs.ErrUnauthenticated)
	require.ErrorIs(t, errs.ErrInvalidToken, errs.ErrUnauthenticated)
	assert.NotErrorIs(t, errs.ErrInvalidToken, errs.ErrInvalidCredentials)
	assert.NotErrorIs(t, errs.ErrInvalidToken, errs.ErrForbidden)
}

func TestJoinedErrorsKeepEveryCause(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("items"),
		errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var outOfRange *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, "quantity", outOfRange.ParamName)
}
