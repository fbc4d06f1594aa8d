package userservice

import (
	"errors"
	"log/slog"

	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// UserService implements the Service interface.
type UserService struct {
	repo   userdb.Repository
	logger *slog.Logger
	run    *operation.Runner
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) (*UserService, error) {
	if repo == nil {
		return nil, errors.New("user repository is required")
	}
	runner := operation.NewRunner("UserService", logger, m, tracer, db)
	return &UserService{
		repo:   repo,
		logger: runner.Logger,
		run:    runner,
	}, nil
}

var _ Service = (*UserService)(nil)

func toProfile(u *userdb.User, roles []string) Profile {
	if roles == nil {
		roles = []string{}
	}
	return Profile{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		StoreLocation: u.StoreLocation,
		Roles:         roles,
		CreatedAt:     u.CreatedAt,
	}
}
