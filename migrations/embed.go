// Package migrations holds the goose SQL migrations applied by cmd/migrate,
// the API at startup and the repository test helper.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
