package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListMenu handles GET /api/v1/restaurants/:id/menu.
func (s *Server) ListMenu(c echo.Context) error {
	restaurantID, err := bindUUIDParam(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewListMenuQuery(restaurantID)
	if err != nil {
		return err
	}

	items, err := s.h.ListMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, newMenuItemResponse(item))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/restaurant/menu.
func (s *Server) CreateMenuItem(c echo.Context) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	var body MenuItemRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	price, err := kernel.MoneyFromDecimal(body.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), principal.ID, body.Title, body.Description, price)
	if err != nil {
		return err
	}
	if err = s.h.CreateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newMenuItemResponse(queries.MenuItemView{
		ID:           cmd.ItemID(),
		RestaurantID: cmd.RestaurantID(),
		Title:        cmd.Title(),
		Description:  cmd.Description(),
		Price:        cmd.Price(),
	}))
}

// UpdateMenuItem handles PUT /api/v1/restaurant/menu/:id. Existing orders
// keep the price they were placed with.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	itemID, err := bindUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var body MenuItemRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	price, err := kernel.MoneyFromDecimal(body.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuItemCommand(itemID, principal.ID, body.Title, body.Description, price)
	if err != nil {
		return err
	}
	if err = s.h.UpdateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMenuItemResponse(queries.MenuItemView{
		ID:           cmd.ItemID(),
		RestaurantID: cmd.RestaurantID(),
		Title:        cmd.Title(),
		Description:  cmd.Description(),
		Price:        cmd.Price(),
	}))
}

// DeleteMenuItem handles DELETE /api/v1/restaurant/menu/:id.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	itemID, err := bindUUIDParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMenuItemCommand(itemID, principal.ID)
	if err != nil {
		return err
	}
	if err = s.h.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
