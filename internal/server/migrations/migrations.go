// Package migrations embeds the goose SQL migrations that are applied once at
// process start.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
