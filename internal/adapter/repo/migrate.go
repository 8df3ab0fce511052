package repo

import (
	"context"
	"fmt"

	"muse/internal/infra"
	"muse/internal/sqlinline"
)

// EnsureSchema creates the snapshot tables when they are missing. Called once
// at startup when a database is configured.
func EnsureSchema(ctx context.Context, db infra.SQLExecutor) error {
	if _, err := db.Exec(ctx, sqlinline.QEnsureProfileTable); err != nil {
		return fmt.Errorf("ensure style_profiles table: %w", err)
	}
	if _, err := db.Exec(ctx, sqlinline.QEnsureCartTable); err != nil {
		return fmt.Errorf("ensure carts table: %w", err)
	}
	return nil
}
