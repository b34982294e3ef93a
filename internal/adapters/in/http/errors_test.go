package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound, "object not found: 42"},
		{"forbidden", errs.NewForbiddenError("order 1", "client 2"), http.StatusForbidden, "access is forbidden: order 1 belongs to client 2"},
		{"illegal transition", errs.NewIllegalTransitionError("order", "COMPLETED", "order is already completed"), http.StatusConflict, ""},
		{"duplicate", errs.NewDuplicateFieldError("user", "email"), http.StatusConflict, ""},
		{"stale version", errs.NewVersionIsInvalidError("order"), http.StatusConflict, ""},
		{"invalid token", errs.ErrInvalidToken, http.StatusUnauthorized, "authentication required"},
		{"invalid credentials", errs.ErrInvalidCredentials, http.StatusUnauthorized, "authentication required"},
		{"echo client error", echo.NewHTTPError(http.StatusBadRequest, "bad body"), http.StatusBadRequest, "bad body"},
		{"echo server error", echo.NewHTTPError(http.StatusServiceUnavailable, "db down"), http.StatusServiceUnavailable, "internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg, _ := describe(tt.err)

			assert.Equal(t, tt.status, status)
			if tt.message != "" {
				assert.Equal(t, tt.message, msg)
			}
		})
	}
}

func TestDescribe_JoinedDomainErrorsBecomeViolations(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("deliveryAddress"),
		errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
	)

	status, msg, violations := describe(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "request validation failed", msg)
	require.Len(t, violations, 2)
	assert.Equal(t, "deliveryAddress", violations[0].Field)
	assert.Equal(t, "quantity", violations[1].Field)
}

func TestDescribe_ValidatorErrorsUseJSONPaths(t *testing.T) {
	err := NewRequestValidator().Validate(&CreateOrderRequest{
		RestaurantID:    uuid.New(),
		DeliveryAddress: "1 Main St",
		Items:           []OrderLineRequest{{MenuItemID: uuid.New(), Quantity: 0}},
	})
	require.Error(t, err)

	status, _, violations := describe(err)

	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, violations, 1)
	assert.Equal(t, Violation{Field: "items[0].quantity", Message: "must be greater than or equal to 1"}, violations[0])
}

func TestRequestValidator_EmptyItems(t *testing.T) {
	err := NewRequestValidator().Validate(&CreateOrderRequest{RestaurantID: uuid.New(), DeliveryAddress: "1 Main St"})
	require.Error(t, err)

	_, _, violations := describe(err)

	require.Len(t, violations, 1)
	assert.Equal(t, "items", violations[0].Field)
	assert.Equal(t, "is required", violations[0].Message)
}

func TestErrorHandler_WritesEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/client/orders/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorHandler(logger.NewWithWriter("test", "error", io.Discard))(errs.NewObjectNotFoundError("order", "7"), c)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "/api/v1/client/orders/7", body.Path)
	assert.Equal(t, "object not found: 7", body.Message)
	assert.False(t, body.Timestamp.IsZero())
	assert.Empty(t, body.Violations)
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/health", nil)
	rec := httptest.NewRecorder()

	NewErrorHandler(logger.NewWithWriter("test", "error", io.Discard))(errs.ErrForbidden, e.NewContext(req, rec))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Body.String())
}
