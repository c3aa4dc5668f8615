package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

const insertStatus = "INSERT INTO statuses (id, url_id, user_id, host, method, created_at, created_by) VALUES (?, ?, ?, ?, ?, ?, ?);"

// StatusRepository is the append-only audit log. Rows are never updated or deleted.
type StatusRepository struct {
	db      *sql.DB
	dialect Dialect
	logger  *zap.Logger
	now     func() time.Time
}

// CreateStatusRepository returns a StatusRepository over a migrated db.
func CreateStatusRepository(db *sql.DB, d Dialect, logger *zap.Logger) *StatusRepository {
	return &StatusRepository{
		db:      db,
		dialect: d,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// InsertAuditEntry appends one row. A dangling url_id gives storage.ErrForeignKey.
func (r *StatusRepository) InsertAuditEntry(ctx context.Context, in storage.StatusCreate) (storage.StatusRecord, error) {
	s := storage.StatusRecord{
		ID:        uuid.New(),
		URLID:     in.URLID,
		UserID:    in.UserID,
		Host:      in.Host,
		Method:    in.Method,
		CreatedAt: r.now(),
		CreatedBy: in.CreatedBy,
	}

	_, err := r.db.ExecContext(ctx, r.dialect.rebind(insertStatus),
		s.ID, s.URLID, s.UserID, s.Host, string(s.Method), s.CreatedAt, s.CreatedBy)
	if err != nil {
		return storage.StatusRecord{}, classify("insert status", err)
	}
	return s, nil
}

func (r *StatusRepository) ListStatuses(ctx context.Context, filter storage.StatusFilter, page storage.Page) ([]storage.StatusRecord, error) {
	b := statuses()
	if filter.URLID.Valid {
		b.Where("url_id = ?", filter.URLID.UUID)
	}
	if filter.UserID.Valid {
		b.Where("user_id = ?", filter.UserID.UUID)
	}
	if filter.Host != "" {
		b.Where("host = ?", filter.Host)
	}
	if filter.Method != "" {
		b.Where("method = ?", string(filter.Method))
	}
	q, args := b.OrderBy("created_at, id").Page(page).Build(r.dialect)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify("list statuses", err)
	}
	defer rows.Close()

	records := make([]storage.StatusRecord, 0)
	for rows.Next() {
		var (
			s         storage.StatusRecord
			method    string
			createdBy sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.URLID, &s.UserID, &s.Host, &method, &s.CreatedAt, &createdBy); err != nil {
			return nil, classify("list statuses", err)
		}
		s.Method = storage.Method(method)
		if createdBy.Valid {
			s.CreatedBy = &createdBy.String
		}
		records = append(records, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list statuses", err)
	}
	return records, nil
}
