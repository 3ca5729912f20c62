package migrations

import "embed"

// FS contains embedded SQLite migrations for durable client state.
//
//go:embed *.sql
var FS embed.FS
