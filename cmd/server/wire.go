//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/yukikurage/hiring-platform-api/internal/config"
	"github.com/yukikurage/hiring-platform-api/internal/handlers"
	"github.com/yukikurage/hiring-platform-api/internal/middleware"
	"github.com/yukikurage/hiring-platform-api/internal/repository"
	"github.com/yukikurage/hiring-platform-api/internal/server"
	"github.com/yukikurage/hiring-platform-api/internal/services"
)

var BaseSet = wire.NewSet(
	server.InitDB,
	server.InitRedis,
	server.InitRegistry,
	server.InitSessionStore,
	server.InitTokenManager,
	server.InitDenylist,
	server.InitGoogleVerifier,
	server.InitInviter,
)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewOrganizationRepository,
	repository.NewJobRepository,
	repository.NewApplicationRepository,
)

var ServiceSet = wire.NewSet(
	services.NewAuthService,
	services.NewOrganizationService,
	services.NewJobService,
	services.NewApplicationService,
	services.NewDashboardService,
	wire.Bind(new(middleware.PrincipalResolver), new(*services.AuthService)),
)

var HandlerSet = wire.NewSet(
	handlers.NewAuthHandler,
	handlers.NewOrganizationHandler,
	handlers.NewJobHandler,
	handlers.NewApplicationHandler,
	handlers.NewDashboardHandler,
	handlers.NewHealthHandler,
	wire.Struct(new(server.Handlers), "*"),
)

func InitApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		BaseSet,
		RepositorySet,
		ServiceSet,
		HandlerSet,
		server.NewRouter,
		server.NewApp,
	)
	return new(server.App), nil, nil
}
