package testutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// TruncateTables empties the given tables and resets their sequences.
func TruncateTables(ctx context.Context, db bun.IDB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("truncate %v: %w", tables, err)
	}
	return nil
}

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, db bun.IDB, table string) (int, error) {
	return db.NewSelect().TableExpr(table).Count(ctx)
}
