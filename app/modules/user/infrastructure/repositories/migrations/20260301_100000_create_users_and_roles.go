package usermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating roles, users and user_roles tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS roles (
					id BIGSERIAL PRIMARY KEY,
					name TEXT NOT NULL UNIQUE
				);
			`); err != nil {
				return fmt.Errorf("failed to create roles table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS users (
					id BIGSERIAL PRIMARY KEY,
					username TEXT NOT NULL,
					email TEXT NOT NULL,
					password_hash TEXT NOT NULL,
					store_location TEXT NULL,
					invite_code_used TEXT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT users_username_key UNIQUE (username),
					CONSTRAINT users_email_key UNIQUE (email)
				);
			`); err != nil {
				return fmt.Errorf("failed to create users table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS user_roles (
					user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					role_id BIGINT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
					PRIMARY KEY (user_id, role_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create user_roles table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_users_store_location ON users (store_location)
				WHERE store_location IS NOT NULL;
			`); err != nil {
				return fmt.Errorf("failed to create store_location index: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO roles (name) VALUES ('user'), ('admin'), ('budtender')
				ON CONFLICT (name) DO NOTHING;
			`); err != nil {
				return fmt.Errorf("failed to seed roles: %w", err)
			}

			fmt.Println("Users and roles created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping user_roles, users and roles tables...")

		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS user_roles;
			DROP TABLE IF EXISTS users;
			DROP TABLE IF EXISTS roles;
		`)
		if err != nil {
			return fmt.Errorf("failed to drop user tables: %w", err)
		}

		fmt.Println("User tables dropped successfully!")
		return nil
	})
}
