package authservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/password"
	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService implements the Service interface.
type AuthService struct {
	users   userdb.Repository
	invites invitedb.Repository
	tokens  authjwt.Provider
	hasher  password.Hasher
	config  Config
	logger  *slog.Logger
	run     *operation.Runner
}

// NewService creates a new AuthService.
func NewService(
	users userdb.Repository,
	invites invitedb.Repository,
	tokens authjwt.Provider,
	hasher password.Hasher,
	cfg Config,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) (*AuthService, error) {
	if users == nil || invites == nil {
		return nil, errors.New("user and invite repositories are required")
	}
	if tokens == nil || hasher == nil {
		return nil, errors.New("token provider and password hasher are required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	runner := operation.NewRunner("AuthService", logger, m, tracer, db)
	return &AuthService{
		users:   users,
		invites: invites,
		tokens:  tokens,
		hasher:  hasher,
		config:  cfg,
		logger:  runner.Logger,
		run:     runner,
	}, nil
}

var _ Service = (*AuthService)(nil)

// Authenticate validates an access token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*authdomain.Claims, error) {
	return s.tokens.ValidateToken(token)
}

// HasRole reports whether userID currently holds role. Roles are read from
// the database on every call so revocations apply immediately.
func (s *AuthService) HasRole(ctx context.Context, userID int64, role authdomain.Role) (bool, error) {
	roles, err := s.users.RoleNames(ctx, nil, []int64{userID})
	if err != nil {
		return false, err
	}
	for _, name := range roles[userID] {
		if authdomain.Role(name) == role {
			return true, nil
		}
	}
	return false, nil
}
