package questionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating questions table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS questions (
					id BIGSERIAL PRIMARY KEY,
					category VARCHAR(100) NOT NULL,
					sub_category VARCHAR(100) NULL,
					question TEXT NOT NULL,
					options JSONB NOT NULL,
					correct_answer TEXT NOT NULL,
					explanation TEXT NULL,
					difficulty VARCHAR(50) NOT NULL DEFAULT 'medium',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create questions table: %w", err)
			}

			indexes := []string{
				`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions (category);`,
				`CREATE INDEX IF NOT EXISTS idx_questions_category_sub ON questions (category, sub_category);`,
			}
			for _, stmt := range indexes {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("failed to create question index: %w", err)
				}
			}

			fmt.Println("Questions table created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping questions table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS questions CASCADE;`); err != nil {
			return fmt.Errorf("failed to drop questions table: %w", err)
		}

		fmt.Println("Questions table dropped successfully!")
		return nil
	})
}
