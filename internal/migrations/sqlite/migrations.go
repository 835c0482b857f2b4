// Package sqlite embeds the SQLite schema migrations applied with goose.
package sqlite

import "embed"

//go:embed *.sql
var Migrations embed.FS
