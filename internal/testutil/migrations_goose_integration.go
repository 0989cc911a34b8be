//go:build integration

package testutil

import (
	"context"

	"github.com/Gunvolt24/bloodbank/internal/repo/postgres"
)

// ApplyMigrationsGoose — встроенные миграции журнала на тестовую БД.
func ApplyMigrationsGoose(ctx context.Context, dsn string) error {
	return postgres.Migrate(ctx, dsn)
}
