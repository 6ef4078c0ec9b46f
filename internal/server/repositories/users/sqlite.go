package users

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/palace/internal/dbx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository stores accounts in SQLite through modernc.org/sqlite.
// Timestamps are kept as unix milliseconds.
type SQLiteRepository struct {
	sqlRepository
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{sqlRepository{
		db: db,
		d: dialect{
			bind:       func(int) string { return "?" },
			greatest:   "MAX",
			timeArg:    func(t time.Time) any { return t.UnixMilli() },
			isConflict: isSQLiteUniqueViolation,
		},
		now: time.Now,
	}}
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
