// Package repository implements the record store over database/sql.
// Postgres is reached through the pgx stdlib driver, SQLite through modernc.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder syntax, schema and version query.
type Dialect int

// Supported dialects.
const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) driverName() string {
	if d == SQLite {
		return "sqlite"
	}
	return "pgx"
}

// rebind rewrites '?' placeholders into the dialect's syntax.
func (d Dialect) rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) schema() []string {
	uuidType, timeType, boolFalse := "UUID", "TIMESTAMPTZ", "FALSE"
	if d == SQLite {
		uuidType, timeType = "TEXT", "TIMESTAMP"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS urls (
			id ` + uuidType + ` PRIMARY KEY,
			url VARCHAR(255) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT ` + boolFalse + `,
			created_at ` + timeType + ` NOT NULL,
			created_by VARCHAR(255),
			updated_at ` + timeType + `,
			updated_by VARCHAR(255)
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS urls_active_url_key ON urls (url) WHERE is_deleted = FALSE;`,
		`CREATE TABLE IF NOT EXISTS statuses (
			id ` + uuidType + ` PRIMARY KEY,
			url_id ` + uuidType + ` NOT NULL REFERENCES urls (id) ON DELETE RESTRICT,
			user_id ` + uuidType + `,
			host VARCHAR(255) NOT NULL,
			method VARCHAR(6) NOT NULL CHECK (method IN ('GET', 'POST', 'PATCH', 'DELETE')),
			created_at ` + timeType + ` NOT NULL,
			created_by VARCHAR(255)
		);`,
		`CREATE INDEX IF NOT EXISTS statuses_url_id_idx ON statuses (url_id);`,
	}
}

func (d Dialect) versionQuery() string {
	if d == SQLite {
		return "SELECT 'SQLite ' || sqlite_version();"
	}
	return "SELECT version();"
}

// InitDB opens the database, checks the connection and creates the schema.
// For SQLite dsn is a file path; foreign keys are switched on for every connection.
func InitDB(ctx context.Context, d Dialect, dsn string, logger *zap.Logger) (*sql.DB, error) {
	if d == SQLite {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		dsn = "file:" + dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open(d.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if d == SQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, stmt := range d.schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	logger.Info("Database connected and tables ready", zap.String("driver", d.driverName()))
	return db, nil
}

// DB answers health checks for the database behind both repositories.
type DB struct {
	db      *sql.DB
	dialect Dialect
}

// NewDB wraps db for health checks.
func NewDB(db *sql.DB, d Dialect) *DB {
	return &DB{db: db, dialect: d}
}

func (r *DB) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Version returns the server version string reported by the database.
func (r *DB) Version(ctx context.Context) (string, error) {
	var v string
	if err := r.db.QueryRowContext(ctx, r.dialect.versionQuery()).Scan(&v); err != nil {
		return "", classify("version", err)
	}
	return v, nil
}
