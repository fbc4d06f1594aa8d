package scoremigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scores and user_question_stats tables...")

		statements := []string{
			`CREATE TABLE IF NOT EXISTS scores (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				score INTEGER NOT NULL CHECK (score >= 0),
				total_questions INTEGER NOT NULL CHECK (total_questions > 0),
				percentage NUMERIC(5,2) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT scores_score_le_total CHECK (score <= total_questions)
			);`,
			`CREATE INDEX IF NOT EXISTS idx_scores_user_best
				ON scores (user_id, percentage DESC, score DESC, created_at ASC);`,
			`CREATE INDEX IF NOT EXISTS idx_scores_user_created
				ON scores (user_id, created_at DESC);`,
			`CREATE TABLE IF NOT EXISTS user_question_stats (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
				question_id BIGINT NOT NULL REFERENCES questions(id) ON UPDATE CASCADE ON DELETE CASCADE,
				times_seen INTEGER NOT NULL DEFAULT 0,
				times_correct INTEGER NOT NULL DEFAULT 0,
				last_answered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT user_question_stats_user_question_key UNIQUE (user_id, question_id),
				CONSTRAINT user_question_stats_correct_le_seen CHECK (times_correct <= times_seen)
			);`,
			`CREATE INDEX IF NOT EXISTS idx_user_question_stats_correct
				ON user_question_stats (user_id, question_id) WHERE times_correct > 0;`,
		}

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			for _, stmt := range statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("failed to apply score schema: %w", err)
				}
			}
			fmt.Println("Scores and user_question_stats tables created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scores and user_question_stats tables...")

		for _, table := range []string{"user_question_stats", "scores"} {
			if _, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE;", table)); err != nil {
				return fmt.Errorf("failed to drop %s table: %w", table, err)
			}
		}

		fmt.Println("Scores and user_question_stats tables dropped successfully!")
		return nil
	})
}
