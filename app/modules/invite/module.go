package invite

import (
	"context"
	"log/slog"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/handlers"
	inviteservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/application"
	invitehandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/handlers"
	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the invite code module.
type Module struct {
	service inviteservice.Service
	logger  *slog.Logger
}

// NewModule creates the invite module and registers the admin-only
// /api/invites routes.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	repo invitedb.Repository,
	httpRouter chi.Router,
	guard *authhandlers.Guard,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing invite module")

	service, err := inviteservice.NewInviteService(repo, logger, obs.Metrics, obs.Tracer("invite"), db, nil)
	if err != nil {
		return nil, err
	}
	handlers := invitehandlers.NewInviteHandlers(service, logger)

	if httpRouter != nil {
		httpRouter.Route("/api/invites", func(r chi.Router) {
			r.Use(guard.RequireToken)
			r.Use(guard.RequireRole(authdomain.RoleAdmin))

			r.Post("/", handlers.HandleCreate)
			r.Get("/", handlers.HandleList)
			r.Delete("/{id}", handlers.HandleDelete)
		})
	}

	return &Module{service: service, logger: logger}, nil
}

// Close stops the invite module.
func (m *Module) Close() error {
	m.logger.Info("Invite module stopped")
	return nil
}
