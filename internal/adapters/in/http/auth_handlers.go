package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/auth/register.
func (s *Server) RegisterUser(c echo.Context) (err error) {
	defer func() { metrics.AuthEvents.WithLabelValues("register", metrics.Result(err)).Inc() }()

	var body RegisterRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), body.Name, body.Email, body.Phone, body.Password, body.Role)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err = s.h.RegisterUser.Handle(ctx, cmd); err != nil {
		return err
	}

	query, err := queries.NewGetProfileQuery(cmd.UserID())
	if err != nil {
		return err
	}
	profile, err := s.h.GetProfile.Handle(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newProfileResponse(profile))
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) (err error) {
	defer func() { metrics.AuthEvents.WithLabelValues("login", metrics.Result(err)).Inc() }()

	var body LoginRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return err
	}

	pair, err := s.h.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTokenPairResponse(pair))
}

// RefreshTokens handles POST /api/v1/auth/refresh.
func (s *Server) RefreshTokens(c echo.Context) (err error) {
	defer func() { metrics.AuthEvents.WithLabelValues("refresh", metrics.Result(err)).Inc() }()

	var body RefreshRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRefreshTokensCommand(body.RefreshToken)
	if err != nil {
		return err
	}

	pair, err := s.h.RefreshTokens.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTokenPairResponse(pair))
}

// Logout handles POST /api/v1/auth/logout. Every token of the caller is
// revoked, not only the one presented.
func (s *Server) Logout(c echo.Context) (err error) {
	defer func() { metrics.AuthEvents.WithLabelValues("logout", metrics.Result(err)).Inc() }()

	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewLogoutCommand(principal.ID)
	if err != nil {
		return err
	}

	if err = s.h.Logout.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
