// Package migrations embeds the SQL files applied by goose at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
