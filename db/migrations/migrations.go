package migrations

import "embed"

// FS embeds the SQL migration files in this directory. They are applied
// through golang-migrate's iofs driver at startup when RUN_MIGRATIONS is
// set.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates to.
const Version = 1
