// Package migrations embeds the goose SQL migrations of the remote store.
package migrations

import "embed"

// FS holds every *.sql migration file.
//
//go:embed *.sql
var FS embed.FS
