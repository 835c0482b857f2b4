// Package postgres embeds the PostgreSQL schema migrations applied with goose.
package postgres

import "embed"

//go:embed *.sql
var Migrations embed.FS
