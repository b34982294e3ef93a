package cmd

import (
	"context"
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/bcrypt"
	"fooddelivery/internal/adapters/out/jwtcodec"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/tokenrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	codec      *jwtcodec.Codec
	hasher     *bcrypt.Hasher
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	codec, err := jwtcodec.NewCodec([]byte(cfg.AccessTokenSecret), []byte(cfg.RefreshTokenSecret))
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		codec:      codec,
		hasher:     bcrypt.NewHasher(cfg.PasswordHashCost),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateEnsureAdminCommandHandler() commands.EnsureAdminCommandHandler {
	return commands.NewEnsureAdminCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.sessionUoWFactory(), c.hasher, c.codec, c.cfg.SessionPolicy())
}

func (c *CompositionRoot) CreateRefreshTokensCommandHandler() commands.RefreshTokensCommandHandler {
	return commands.NewRefreshTokensCommandHandler(c.sessionUoWFactory(), c.codec, c.cfg.SessionPolicy())
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.tokenUoWFactory())
}

func (c *CompositionRoot) CreateSweepExpiredTokensCommandHandler() commands.SweepExpiredTokensCommandHandler {
	return commands.NewSweepExpiredTokensCommandHandler(c.tokenUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateOverrideOrderCommandHandler() commands.OverrideOrderCommandHandler {
	return commands.NewOverrideOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

// CreateAuthenticateQueryHandler reads outside any transaction; every request
// passes through it.
func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(
		c.codec,
		tokenrepo.NewGormTokenRepository(c.gormDB),
		userrepo.NewGormUserRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuQueryHandler() queries.ListMenuQueryHandler {
	return queries.NewListMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

// NewEcho builds the HTTP server with every route wired.
func (c *CompositionRoot) NewEcho() *echo.Echo {
	handlers := httpin.Handlers{
		RegisterUser:    c.CreateRegisterUserCommandHandler(),
		Login:           c.CreateLoginCommandHandler(),
		RefreshTokens:   c.CreateRefreshTokensCommandHandler(),
		Logout:          c.CreateLogoutCommandHandler(),
		UpdateProfile:   c.CreateUpdateProfileCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		TransitionOrder: c.CreateTransitionOrderCommandHandler(),
		OverrideOrder:   c.CreateOverrideOrderCommandHandler(),
		CreateMenuItem:  c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:  c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:  c.CreateDeleteMenuItemCommandHandler(),

		Authenticate: c.CreateAuthenticateQueryHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		ListMenu:     c.CreateListMenuQueryHandler(),
		GetProfile:   c.CreateGetProfileQueryHandler(),
	}
	return httpin.NewServer(handlers, c.logger).NewEcho()
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweeper := c.CreateSweepExpiredTokensCommandHandler()
	return jobs.NewJobManager(&sweeper, c.cfg.TokenSweepSchedule, c.logger)
}

// EnsureAdmin provisions the configured administrator. Without admin
// credentials in the config it does nothing.
func (c *CompositionRoot) EnsureAdmin(ctx context.Context) error {
	if !c.cfg.AdminConfigured() {
		return nil
	}

	cmd, err := commands.NewEnsureAdminCommand(kernel.NewUUID(), c.cfg.AdminName, c.cfg.AdminEmail, c.cfg.AdminPhone, c.cfg.AdminPassword)
	if err != nil {
		return err
	}

	handler := c.CreateEnsureAdminCommandHandler()
	created, err := handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if created {
		c.logger.InfoContext(ctx, "Administrator account created", slog.String("email", cmd.Email()))
	}
	return nil
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tokenUoWFactory() commands.TokenUoWFactory {
	return FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncTokenUoWFactory func() commands.TokenUoW

func (f FuncTokenUoWFactory) Create() commands.TokenUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
