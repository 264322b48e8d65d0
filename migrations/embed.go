// Package migrations — SQL-миграции каталога (goose), встроенные в бинарь.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
