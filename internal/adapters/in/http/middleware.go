package http

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const principalKey = "principal"

// Authenticate resolves a bearer access token into a principal for the rest
// of the chain. A missing or rejected token leaves the request anonymous so
// that public routes keep working; RequireRole turns that into a 401.
func Authenticate(handler queries.AuthenticateQueryHandler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			query, err := queries.NewAuthenticateQuery(raw)
			if err != nil {
				return next(c)
			}

			principal, err := handler.Handle(c.Request().Context(), query)
			switch {
			case err == nil:
				c.Set(principalKey, principal)
				req := c.Request()
				scoped := logger.FromContext(req.Context()).With(slog.String("user_id", principal.ID.String()))
				c.SetRequest(req.WithContext(logger.NewContext(req.Context(), scoped)))
			case errors.Is(err, errs.ErrUnauthenticated):
			default:
				return err
			}

			return next(c)
		}
	}
}

// RequireRole lets the request through only for an authenticated principal
// holding one of roles. With no roles any authenticated principal passes.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return errs.ErrUnauthenticated
			}

			if len(roles) == 0 {
				return next(c)
			}
			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}

			names := make([]string, 0, len(roles))
			for _, role := range roles {
				names = append(names, role.String())
			}
			return errs.NewForbiddenError(c.Request().Method+" "+c.Path(), strings.Join(names, ", "))
		}
	}
}

// PrincipalFrom returns the caller set by Authenticate.
func PrincipalFrom(c echo.Context) (queries.Principal, bool) {
	principal, ok := c.Get(principalKey).(queries.Principal)
	return principal, ok
}

func mustPrincipal(c echo.Context) (queries.Principal, error) {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return queries.Principal{}, errs.ErrUnauthenticated
	}
	return principal, nil
}

// bearerToken parses "Bearer <token>" with a case-insensitive scheme.
func bearerToken(header string) (string, bool) {
	scheme, value, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// RequestLogger stores a request-scoped logger in the context and writes one
// record per request once the error handler has run.
func RequestLogger(base *slog.Logger) []echo.MiddlewareFunc {
	scope := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := base.With(slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), l)))
			return next(c)
		}
	}

	access := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.FromContext(c.Request().Context()).LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency.Round(time.Microsecond)),
			)
			return nil
		},
	})

	return []echo.MiddlewareFunc{scope, access}
}
