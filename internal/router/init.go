package router

import (
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/application"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/container"
	pginfra "github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/infrastructure/postgres"
	handlers "github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/interface/http"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/router/modules"
)

func buildRegistrationHandler() *handlers.RegistrationHandler {
	repo := pginfra.NewAccountRepository(container.GetPGPool())

	service := application.NewService(
		repo,
		container.GetLogger(),
		container.GetConfig(),
		container.GetRabbitPub(),
		container.GetES(),
		container.GetConfig().ESRegistrationsIdx,
	)

	return handlers.NewRegistrationHandler(service, container.GetLogger())
}

// InitModules initializes all application modules and registers them with the router registry.
// This function should be called once during application startup to wire up all modules.
func InitModules(r *Registry) {
	r.Add(modules.NewRegistrationModule(buildRegistrationHandler()))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetPGPool())))
	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
