package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetProfile handles GET /api/v1/users/me.
func (s *Server) GetProfile(c echo.Context) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	return s.writeProfile(c, principal.ID, http.StatusOK)
}

// UpdateProfile handles PUT /api/v1/users/me.
func (s *Server) UpdateProfile(c echo.Context) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	var body ProfileRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProfileCommand(principal.ID, body.Name, body.Email, body.Phone)
	if err != nil {
		return err
	}
	if err = s.h.UpdateProfile.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.writeProfile(c, principal.ID, http.StatusOK)
}

func (s *Server) writeProfile(c echo.Context, userID kernel.UUID, status int) error {
	query, err := queries.NewGetProfileQuery(userID)
	if err != nil {
		return err
	}

	profile, err := s.h.GetProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(status, newProfileResponse(profile))
}
