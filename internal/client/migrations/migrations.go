// Package migrations embeds the local SQLite schema applied at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
