package inviteservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const (
	codeLength      = 8
	codeMaxAttempts = 5
)

// CodeGenerator returns a candidate invite code.
type CodeGenerator func() (string, error)

// RandomCode returns codeLength uppercase hex characters from crypto/rand.
func RandomCode() (string, error) {
	buf := make([]byte, codeLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// InviteService implements the Service interface.
type InviteService struct {
	repo     invitedb.Repository
	logger   *slog.Logger
	run      *operation.Runner
	generate CodeGenerator
}

// NewInviteService creates a new InviteService. A nil generator uses RandomCode.
func NewInviteService(
	repo invitedb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	generate CodeGenerator,
) (*InviteService, error) {
	if repo == nil {
		return nil, errors.New("invite repository is required")
	}
	if generate == nil {
		generate = RandomCode
	}
	runner := operation.NewRunner("InviteService", logger, m, tracer, db)
	return &InviteService{
		repo:     repo,
		logger:   runner.Logger,
		run:      runner,
		generate: generate,
	}, nil
}

var _ Service = (*InviteService)(nil)

// CreateInvite generates a unique code and stores it. maxUses is only kept
// for reusable codes.
func (s *InviteService) CreateInvite(ctx context.Context, req CreateRequest) (*invitedb.InviteCode, error) {
	result, err := operation.Run(s.run, ctx, "CreateInvite", req.StoreLocation, nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*invitedb.InviteCode, error], error) {
			var maxUses *int
			if req.IsReusable && req.MaxUses != nil {
				if *req.MaxUses <= 0 {
					return results.FailureResult[*invitedb.InviteCode, error](ErrInvalidMaxUses), nil
				}
				v := *req.MaxUses
				maxUses = &v
			}

			code, err := s.uniqueCode(ctx, db)
			if err != nil {
				return results.OperationResult[*invitedb.InviteCode, error]{}, err
			}

			invite := &invitedb.InviteCode{
				Code:       code,
				IsReusable: req.IsReusable,
				MaxUses:    maxUses,
			}
			if loc := strings.TrimSpace(req.StoreLocation); loc != "" {
				invite.StoreLocation = &loc
			}
			if err := s.repo.Create(ctx, db, invite); err != nil {
				return results.OperationResult[*invitedb.InviteCode, error]{}, fmt.Errorf("failed to create invite: %w", err)
			}

			s.logger.InfoContext(ctx, "Invite code created",
				attr.ExtractCorrelationID(ctx),
				attr.String("code", invite.Code),
				attr.Bool("reusable", invite.IsReusable),
			)
			return results.SuccessResult[*invitedb.InviteCode, error](invite), nil
		})
	return operation.Collapse(result, err)
}

func (s *InviteService) uniqueCode(ctx context.Context, db bun.IDB) (string, error) {
	for attempt := 1; attempt <= codeMaxAttempts; attempt++ {
		code, err := s.generate()
		if err != nil {
			return "", err
		}
		exists, err := s.repo.CodeExists(ctx, db, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
		s.logger.WarnContext(ctx, "Invite code collision, retrying",
			attr.ExtractCorrelationID(ctx),
			attr.Int("attempt", attempt),
		)
	}
	return "", fmt.Errorf("%w after %d attempts", ErrCodeGenerationFailed, codeMaxAttempts)
}

// ListInvites returns every code, newest first.
func (s *InviteService) ListInvites(ctx context.Context) ([]invitedb.InviteCode, error) {
	result, err := operation.Run(s.run, ctx, "ListInvites", "all", nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]invitedb.InviteCode, error], error) {
			invites, err := s.repo.List(ctx, db)
			if err != nil {
				return results.OperationResult[[]invitedb.InviteCode, error]{}, fmt.Errorf("failed to list invites: %w", err)
			}
			if invites == nil {
				invites = []invitedb.InviteCode{}
			}
			return results.SuccessResult[[]invitedb.InviteCode, error](invites), nil
		})
	return operation.Collapse(result, err)
}

// DeleteInvite removes a code and returns what was deleted.
func (s *InviteService) DeleteInvite(ctx context.Context, id int64) (*invitedb.InviteCode, error) {
	result, err := operation.Run(s.run, ctx, "DeleteInvite", strconv.FormatInt(id, 10), nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*invitedb.InviteCode, error], error) {
			target, err := s.repo.GetByID(ctx, db, id)
			if err != nil {
				if errors.Is(err, invitedb.ErrNotFound) {
					return results.FailureResult[*invitedb.InviteCode, error](ErrInviteNotFound), nil
				}
				return results.OperationResult[*invitedb.InviteCode, error]{}, fmt.Errorf("failed to load invite: %w", err)
			}
			if err := s.repo.Delete(ctx, db, id); err != nil {
				if errors.Is(err, invitedb.ErrNotFound) {
					return results.FailureResult[*invitedb.InviteCode, error](ErrInviteNotFound), nil
				}
				return results.OperationResult[*invitedb.InviteCode, error]{}, fmt.Errorf("failed to delete invite: %w", err)
			}
			return results.SuccessResult[*invitedb.InviteCode, error](target), nil
		})
	return operation.Collapse(result, err)
}
