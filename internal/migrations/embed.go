// Package migrations provides the embedded SQL for the local state database.
package migrations

import (
	_ "embed"
)

//go:embed sql/001_initial.sql
var InitialSQL string

//go:embed sql/002_last_login.sql
var Migration002LastLogin string

// All lists migrations in the order they must be applied. A migration's
// version is its index plus one.
var All = []string{InitialSQL, Migration002LastLogin}
