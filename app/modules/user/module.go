package user

import (
	"context"
	"log/slog"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/handlers"
	userservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/application"
	userhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/handlers"
	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the user account module.
type Module struct {
	service  userservice.Service
	handlers userhandlers.Handlers
	logger   *slog.Logger
}

// NewModule creates the user module and registers /api/users routes.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	repo userdb.Repository,
	httpRouter chi.Router,
	guard *authhandlers.Guard,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("user")

	logger.InfoContext(ctx, "Initializing user module")

	service, err := userservice.NewUserService(repo, logger, obs.Metrics, tracer, db)
	if err != nil {
		return nil, err
	}
	handlers := userhandlers.NewUserHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Route("/api/users", func(r chi.Router) {
			r.Use(guard.RequireToken)

			r.Get("/me", handlers.HandleGetMe)
			r.Put("/me", handlers.HandleUpdateMe)
			r.Get("/locations", handlers.HandleListLocations)

			r.Group(func(r chi.Router) {
				r.Use(guard.RequireRole(authdomain.RoleAdmin))
				r.Get("/", handlers.HandleListUsers)
				r.Delete("/{id}", handlers.HandleDeleteUser)
			})
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}

// GetService returns the user service for use by other modules.
func (m *Module) GetService() userservice.Service {
	return m.service
}

// Close stops the user module.
func (m *Module) Close() error {
	m.logger.Info("User module stopped")
	return nil
}
