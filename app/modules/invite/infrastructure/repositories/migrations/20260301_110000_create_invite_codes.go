package invitemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating invite_codes table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS invite_codes (
				id BIGSERIAL PRIMARY KEY,
				code VARCHAR(32) NOT NULL UNIQUE,
				store_location TEXT NULL,
				is_reusable BOOLEAN NOT NULL DEFAULT FALSE,
				max_uses INTEGER NULL CHECK (max_uses IS NULL OR max_uses > 0),
				uses_count INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create invite_codes table: %w", err)
		}

		fmt.Println("Invite codes table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping invite_codes table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS invite_codes;`); err != nil {
			return fmt.Errorf("failed to drop invite_codes table: %w", err)
		}

		fmt.Println("Invite codes table dropped successfully!")
		return nil
	})
}
