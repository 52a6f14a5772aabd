// Package export ingests answer logs into a DuckDB database for ad-hoc
// analysis with SQL.
package export

import (
	"database/sql"
	_ "embed"
	"errors"
)

// schemaDDL holds the DuckDB schema definition.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing export databases.
func SchemaDDL() string {
	return schemaDDL
}

// EnsureSchema applies the schema DDL to the provided database connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("export: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
