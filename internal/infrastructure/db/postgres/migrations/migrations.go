// Package migrations embeds the goose SQL migration files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
