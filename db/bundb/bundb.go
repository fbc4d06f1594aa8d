// Package bundb opens the Postgres connection and builds every module
// repository on top of it.
package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	leaderboarddb "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/infrastructure/repositories"
	masterydb "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/infrastructure/repositories"
	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const pingTimeout = 5 * time.Second

// DBService holds the shared connection pool and one repository per module.
type DBService struct {
	UserDB        userdb.Repository
	InviteDB      invitedb.Repository
	QuestionDB    questiondb.Repository
	ScoreDB       scoredb.Repository
	MasteryDB     masterydb.Repository
	LeaderboardDB leaderboarddb.Repository
	db            *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// Close closes the connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}

// NewBunDBService connects to Postgres and wires the repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}

	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewDBService(bun.NewDB(sqldb, pgdialect.New())), nil
}

// NewDBService wires the repositories around an existing bun.DB.
func NewDBService(db *bun.DB) *DBService {
	return &DBService{
		UserDB:        userdb.NewRepository(db),
		InviteDB:      invitedb.NewRepository(db),
		QuestionDB:    questiondb.NewRepository(db),
		ScoreDB:       scoredb.NewRepository(db),
		MasteryDB:     masterydb.NewRepository(db),
		LeaderboardDB: leaderboarddb.NewRepository(db),
		db:            db,
	}
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqldb.PingContext(pingCtx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
