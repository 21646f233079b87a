// Package migrations embeds the schema applied by dbmanager on start-up.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
