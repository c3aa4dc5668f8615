package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

// classify maps driver errors onto the storage error set.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return storage.ErrDuplicate
		case pgerrcode.ForeignKeyViolation:
			return storage.ErrForeignKey
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return storage.ErrDuplicate
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return storage.ErrForeignKey
		case sqlite3.SQLITE_CONSTRAINT:
			// connection opened without extended result codes
			msg := liteErr.Error()
			switch {
			case strings.Contains(msg, "UNIQUE constraint failed"):
				return storage.ErrDuplicate
			case strings.Contains(msg, "FOREIGN KEY constraint failed"):
				return storage.ErrForeignKey
			}
		}
	}

	return storage.AsStoreError(op, err)
}
