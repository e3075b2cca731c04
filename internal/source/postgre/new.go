package postgres

import (
	"database/sql"

	"member-admin/internal/source"
	pkgLog "member-admin/pkg/log"
)

const sourceName = "postgres"

type implSource struct {
	l     pkgLog.Logger
	db    *sql.DB
	table string
}

var _ source.Source = &implSource{}

// New returns a Source that reads members from table. The table name is quoted, never interpolated raw.
func New(l pkgLog.Logger, db *sql.DB, table string) source.Source {
	return &implSource{
		l:     l,
		db:    db,
		table: table,
	}
}
