// Package migrations holds the goose SQL migrations applied on start
// (database.migrate_on_start), by `taskctl migrate` and by integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
