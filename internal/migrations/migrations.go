// Package migrations embeds the goose migrations for the key/value schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
