package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/Black-And-White-Club/budtender-trivia/config"
	"github.com/Black-And-White-Club/budtender-trivia/db/bundb"
	"github.com/Black-And-White-Club/budtender-trivia/integration_tests/containers"
)

// TestEnvironment holds a migrated Postgres container and the repositories
// built on it.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	DBService     *bundb.DBService
	Config        *config.Config
}

// NewTestEnvironment starts Postgres and applies every module migration.
func NewTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	db := bun.NewDB(sqlDB, pgdialect.New())

	if err := bundb.MigrateAll(ctx, db); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		PgContainer:   pgContainer,
		DB:            db,
		DBService:     bundb.NewDBService(db),
		Config:        &config.Config{Postgres: config.PostgresConfig{DSN: connStr}},
	}, nil
}

// Reset empties every application table between tests. Seeded roles stay.
func (env *TestEnvironment) Reset(t *testing.T) {
	t.Helper()
	if err := TruncateTables(env.Ctx, env.DB, "user_question_stats", "scores", "invite_codes", "questions", "user_roles", "users"); err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}

// Cleanup closes the connection and terminates the container.
func (env *TestEnvironment) Cleanup() {
	if env.CancelContext != nil {
		env.CancelContext()
	}
	if env.DB != nil {
		env.DB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Error terminating Postgres container: %v", err)
		}
	}
}

// RunMain is the body of a package TestMain: it starts one environment for
// the whole package, stores it in *env and tears it down after m.Run.
func RunMain(m *testing.M, env **TestEnvironment) {
	e, err := NewTestEnvironment()
	if err != nil {
		log.Fatalf("Exiting due to failed test environment initialization: %v", err)
	}
	*env = e

	code := m.Run()
	e.Cleanup()
	os.Exit(code)
}
