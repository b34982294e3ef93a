package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fooddelivery/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Timestamp  time.Time   `json:"timestamp"`
	Status     int         `json:"status"`
	Message    string      `json:"message"`
	Path       string      `json:"path"`
	Violations []Violation `json:"violations,omitempty"`
}

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	unauthenticatedMessage = "authentication required"
	internalMessage        = "internal server error"
)

// NewErrorHandler returns echo's HTTPErrorHandler. Business errors become
// 4xx responses with their message; anything else is logged and answered
// with a generic 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		response := ErrorResponse{
			Timestamp: time.Now().UTC(),
			Path:      c.Request().URL.Path,
		}
		response.Status, response.Message, response.Violations = describe(err)

		if response.Status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", response.Path),
				slog.Any("error", err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(response.Status)
		} else {
			writeErr = c.JSON(response.Status, response)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", slog.Any("error", writeErr))
		}
	}
}

// describe maps an error onto status, message and violations. The order of
// the checks decides the status of joined errors.
func describe(err error) (int, string, []Violation) {
	var validationErrs validator.ValidationErrors
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErrs):
		violations := make([]Violation, 0, len(validationErrs))
		for _, fe := range validationErrs {
			violations = append(violations, Violation{Field: fieldPath(fe), Message: violationMessage(fe)})
		}
		return http.StatusBadRequest, "request validation failed", violations
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, internalMessage, nil
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message), nil
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, unauthenticatedMessage, nil
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, message(err), nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, message(err), nil
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrDuplicateField),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, message(err), nil
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, "request validation failed", domainViolations(err)
	}
	return http.StatusInternalServerError, internalMessage, nil
}

// message flattens joined errors onto one line.
func message(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

// domainViolations collects one violation per validation error found in a
// (possibly joined) error tree.
func domainViolations(err error) []Violation {
	var violations []Violation

	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) { //nolint:errorlint // walking the tree by hand
		case *errs.ValueIsRequiredError:
			violations = append(violations, Violation{Field: v.ParamName, Message: v.Error()})
		case *errs.ValueIsInvalidError:
			violations = append(violations, Violation{Field: v.ParamName, Message: v.Error()})
		case *errs.ValueIsOutOfRangeError:
			violations = append(violations, Violation{Field: v.ParamName, Message: v.Error()})
		case interface{ Unwrap() []error }:
			for _, inner := range v.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := v.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)

	return violations
}
