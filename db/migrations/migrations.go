// Package migrations holds the SQL schema of the campaign and banner file
// tables, applied by internal/db.Migrate through the iofs source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate brings the database to.
const Version = 1
