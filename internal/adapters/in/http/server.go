package http

import (
	"context"
	"log/slog"
	"net/http"

	"fooddelivery/internal/adapters/in/http/openapi"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const APIPrefix = "/api/v1"

// Handlers lists the use cases the HTTP surface dispatches to.
type Handlers struct {
	RegisterUser    commands.RegisterUserCommandHandler
	Login           commands.LoginCommandHandler
	RefreshTokens   commands.RefreshTokensCommandHandler
	Logout          commands.LogoutCommandHandler
	UpdateProfile   commands.UpdateProfileCommandHandler
	CreateOrder     commands.CreateOrderCommandHandler
	TransitionOrder commands.TransitionOrderCommandHandler
	OverrideOrder   commands.OverrideOrderCommandHandler
	CreateMenuItem  commands.CreateMenuItemCommandHandler
	UpdateMenuItem  commands.UpdateMenuItemCommandHandler
	DeleteMenuItem  commands.DeleteMenuItemCommandHandler

	Authenticate queries.AuthenticateQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	ListOrders   queries.ListOrdersQueryHandler
	ListMenu     queries.ListMenuQueryHandler
	GetProfile   queries.GetProfileQueryHandler
}

// Server adapts HTTP requests to commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger}
}

// NewEcho builds the echo instance with middleware, error handling and every
// route registered.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(s.logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(s.logger)...)
	e.Use(middleware.Recover())

	s.Register(e)
	return e
}

// Register mounts the ops endpoints and the versioned API on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if err := openapi.RegisterSwagger(context.Background()); err != nil {
		s.logger.Error("openapi document is invalid, swagger ui disabled", slog.Any("error", err))
	} else {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group(APIPrefix, Authenticate(s.h.Authenticate))
	authenticated := RequireRole()

	auth := api.Group("/auth")
	auth.POST("/register", s.RegisterUser)
	auth.POST("/login", s.Login)
	auth.POST("/refresh", s.RefreshTokens)
	auth.POST("/logout", s.Logout, authenticated)

	api.GET("/users/me", s.GetProfile, authenticated)
	api.PUT("/users/me", s.UpdateProfile, authenticated)
	api.GET("/restaurants/:id/menu", s.ListMenu, authenticated)

	client := api.Group("/client", RequireRole(user.Client))
	client.POST("/orders", s.CreateOrder)
	client.GET("/orders", s.listOrders(queries.ScopeMine))
	client.GET("/orders/:id", s.GetOrder)
	client.DELETE("/orders/:id", s.DeleteOrder)

	restaurant := api.Group("/restaurant", RequireRole(user.Restaurant))
	restaurant.POST("/menu", s.CreateMenuItem)
	restaurant.PUT("/menu/:id", s.UpdateMenuItem)
	restaurant.DELETE("/menu/:id", s.DeleteMenuItem)
	restaurant.GET("/orders", s.listOrders(queries.ScopeMine))
	restaurant.GET("/orders/:id", s.GetOrder)
	restaurant.POST("/orders/:id/accept", s.AcceptOrder)
	restaurant.POST("/orders/:id/prepare", s.PrepareOrder)

	courier := api.Group("/courier", RequireRole(user.Courier))
	courier.GET("/orders", s.listOrders(queries.ScopeMine))
	courier.GET("/orders/available", s.listOrders(queries.ScopeAvailable))
	courier.GET("/orders/:id", s.GetOrder)
	courier.POST("/orders/:id/accept", s.TakeDelivery)
	courier.POST("/orders/:id/pick-up", s.PickUpOrder)
	courier.POST("/orders/:id/deliver", s.DeliverOrder)

	admin := api.Group("/admin", RequireRole(user.Admin))
	admin.GET("/orders", s.listOrders(queries.ScopeAll))
	admin.GET("/orders/:id", s.GetOrder)
	admin.PATCH("/orders/:id", s.OverrideOrder)
	admin.DELETE("/orders/:id", s.AdminDeleteOrder)
}
