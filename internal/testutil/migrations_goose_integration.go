//go:build integration

package testutil

import (
	"context"
	"log"
	"os"

	pgrepo "github.com/Gunvolt24/wb_basket/internal/repo/postgres"
	"github.com/pressly/goose/v3"
)

// ApplyMigrationsGoose применяет встроенные миграции каталога (goose up).
func ApplyMigrationsGoose(dsn string) error {
	goose.SetLogger(log.New(os.Stdout, "[goose] ", 0))
	return pgrepo.Migrate(context.Background(), dsn, pgrepo.MigrateUp)
}
