// Package migrations embeds the SQL schema so the server and the migrate
// command can apply it without a migrations directory on disk.
package migrations

import "embed"

// FS holds every *.up.sql / *.down.sql pair in this directory
//
//go:embed *.sql
var FS embed.FS
