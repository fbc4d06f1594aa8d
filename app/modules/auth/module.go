package auth

import (
	"context"
	"errors"
	"log/slog"

	authservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/application"
	authhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/password"
	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/Black-And-White-Club/budtender-trivia/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

// Module represents the auth module: signup, signin and the request guard
// other modules mount on their routes.
type Module struct {
	service  authservice.Service
	handlers authhandlers.Handlers
	guard    *authhandlers.Guard
	logger   *slog.Logger
}

// NewModule creates the auth module and registers /api/auth routes.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	users userdb.Repository,
	invites invitedb.Repository,
	httpRouter chi.Router,
	db *bun.DB,
) (*Module, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	logger := obs.Logger
	tracer := obs.Tracer("auth")

	logger.InfoContext(ctx, "Initializing auth module")

	service, err := authservice.NewService(
		users,
		invites,
		authjwt.NewProvider(cfg.JWT.Secret),
		password.NewBcryptHasher(bcrypt.DefaultCost),
		authservice.Config{
			InviteRequired: cfg.InviteRequired(),
			TokenTTL:       cfg.JWT.DefaultTTL,
		},
		logger,
		obs.Metrics,
		tracer,
		db,
	)
	if err != nil {
		return nil, err
	}

	handlers := authhandlers.NewAuthHandlers(service, logger, tracer)

	if httpRouter != nil {
		limiter := authhandlers.NewIPRateLimiter(5, 10)
		httpRouter.Route("/api/auth", func(r chi.Router) {
			r.Use(authhandlers.RateLimitMiddleware(limiter))
			r.Post("/signup", handlers.HandleSignup)
			r.Post("/signin", handlers.HandleSignin)
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		guard:    authhandlers.NewGuard(service, logger),
		logger:   logger,
	}, nil
}

// Guard returns the token and role middleware for other modules.
func (m *Module) Guard() *authhandlers.Guard {
	return m.guard
}

// GetService returns the auth service for use by other modules.
func (m *Module) GetService() authservice.Service {
	return m.service
}

// Close stops the auth module.
func (m *Module) Close() error {
	m.logger.Info("Auth module stopped")
	return nil
}
