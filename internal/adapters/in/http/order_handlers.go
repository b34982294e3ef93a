package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/client/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	var body CreateOrderRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromBytes(body.RestaurantID[:])
	if err != nil {
		return err
	}
	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(item.MenuItemID[:])
		if idErr != nil {
			return idErr
		}
		lines = append(lines, commands.OrderLine{MenuItemID: menuItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), principal.ID, restaurantID, body.DeliveryAddress, lines)
	if err != nil {
		return err
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.writeOrder(c, cmd.OrderID(), principal.Actor(), http.StatusCreated)
}

// GetOrder handles GET /api/v1/{client,restaurant,courier,admin}/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	orderID, err := bindUUIDParam(c, "id")
	if err != nil {
		return err
	}

	return s.writeOrder(c, orderID, principal.Actor(), http.StatusOK)
}

// listOrders serves the paginated listings; the route decides the scope.
func (s *Server) listOrders(scope queries.OrderScope) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := mustPrincipal(c)
		if err != nil {
			return err
		}

		page, size, err := bindPaging(c, queries.DefaultPageSize)
		if err != nil {
			return err
		}

		query, err := queries.NewListOrdersQuery(principal.Actor(), scope, page, size)
		if err != nil {
			return err
		}

		response, err := s.h.ListOrders.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, newOrderPageResponse(response))
	}
}

// AcceptOrder handles POST /api/v1/restaurant/orders/:id/accept.
func (s *Server) AcceptOrder(c echo.Context) error {
	return s.transition(c, order.Accept)
}

// PrepareOrder handles POST /api/v1/restaurant/orders/:id/prepare.
func (s *Server) PrepareOrder(c echo.Context) error {
	return s.transition(c, order.Prepare)
}

// TakeDelivery handles POST /api/v1/courier/orders/:id/accept.
func (s *Server) TakeDelivery(c echo.Context) error {
	return s.transition(c, order.TakeDelivery)
}

// PickUpOrder handles POST /api/v1/courier/orders/:id/pick-up.
func (s *Server) PickUpOrder(c echo.Context) error {
	return s.transition(c, order.PickUp)
}

// DeliverOrder handles POST /api/v1/courier/orders/:id/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	return s.transition(c, order.Deliver)
}

// DeleteOrder handles DELETE /api/v1/client/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	return s.transition(c, order.Delete)
}

// transition runs one lifecycle action for the caller and answers with the
// order as it is afterwards.
func (s *Server) transition(c echo.Context, action order.Action) (err error) {
	defer func() { metrics.OrderTransitions.WithLabelValues(action.String(), metrics.Result(err)).Inc() }()

	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	orderID, err := bindUUIDParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, principal.Actor(), action)
	if err != nil {
		return err
	}
	if err = s.h.TransitionOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.writeOrder(c, orderID, principal.Actor(), http.StatusOK)
}

// OverrideOrder handles PATCH /api/v1/admin/orders/:id.
func (s *Server) OverrideOrder(c echo.Context) (err error) {
	defer func() { metrics.OrderTransitions.WithLabelValues("override", metrics.Result(err)).Inc() }()

	var body OverrideOrderRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	patch := order.OverridePatch{UnassignCourier: body.UnassignCourier}
	if body.Status != nil {
		status, parseErr := order.ParseStatus(*body.Status)
		if parseErr != nil {
			return parseErr
		}
		patch.Status = &status
	}
	if body.TotalPrice != nil {
		price, priceErr := kernel.MoneyFromDecimal(*body.TotalPrice)
		if priceErr != nil {
			return priceErr
		}
		patch.TotalPrice = &price
	}
	if body.CourierID != nil {
		courierID, idErr := kernel.UUIDFromBytes(body.CourierID[:])
		if idErr != nil {
			return idErr
		}
		patch.CourierID = &courierID
	}

	return s.override(c, patch)
}

// AdminDeleteOrder handles DELETE /api/v1/admin/orders/:id as an override to
// DELETED.
func (s *Server) AdminDeleteOrder(c echo.Context) (err error) {
	defer func() { metrics.OrderTransitions.WithLabelValues("admin-delete", metrics.Result(err)).Inc() }()

	deleted := order.Deleted
	return s.override(c, order.OverridePatch{Status: &deleted})
}

func (s *Server) override(c echo.Context, patch order.OverridePatch) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	orderID, err := bindUUIDParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewOverrideOrderCommand(orderID, patch)
	if err != nil {
		return err
	}
	if err = s.h.OverrideOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.writeOrder(c, orderID, principal.Actor(), http.StatusOK)
}

func (s *Server) writeOrder(c echo.Context, orderID kernel.UUID, actor order.Actor, status int) error {
	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(status, newOrderResponse(view))
}
