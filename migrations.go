package cryptoshop

import "embed"

// MigrationsFS holds the SQL migrations for the sales ledger.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
