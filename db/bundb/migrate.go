package bundb

import (
	"context"
	"fmt"

	invitemigrations "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories/migrations"
	questionmigrations "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories/migrations"
	scoremigrations "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is the migrator of one module. Each module keeps its own
// bookkeeping tables so groups and rollbacks stay per module.
type ModuleMigrator struct {
	Name     string
	Migrator *migrate.Migrator
}

// Migrators returns the module migrators in dependency order: scores and
// statistics reference users and questions.
func Migrators(db *bun.DB) []ModuleMigrator {
	modules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"user", usermigrations.Migrations},
		{"question", questionmigrations.Migrations},
		{"invite", invitemigrations.Migrations},
		{"score", scoremigrations.Migrations},
	}

	out := make([]ModuleMigrator, 0, len(modules))
	for _, m := range modules {
		out = append(out, ModuleMigrator{
			Name: m.name,
			Migrator: migrate.NewMigrator(db, m.migrations,
				migrate.WithTableName("bun_migrations_"+m.name),
				migrate.WithLocksTableName("bun_migration_locks_"+m.name),
			),
		})
	}
	return out
}

// Lookup returns the migrator for the named module.
func Lookup(migrators []ModuleMigrator, name string) (*migrate.Migrator, error) {
	for _, m := range migrators {
		if m.Name == name {
			return m.Migrator, nil
		}
	}
	return nil, fmt.Errorf("invalid module name: %s", name)
}

// MigrateAll initialises and applies every module's migrations in order.
func MigrateAll(ctx context.Context, db *bun.DB) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", m.Name, err)
		}
		if _, err := m.Migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", m.Name, err)
		}
	}
	return nil
}
