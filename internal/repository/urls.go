package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

const insertURL = "INSERT INTO urls (id, url, is_deleted, created_at, created_by) VALUES (?, ?, FALSE, ?, ?);"

// URLRepository stores URL records in Postgres or SQLite. Deletes are soft:
// the row stays and is_deleted is set.
type URLRepository struct {
	db      *sql.DB
	dialect Dialect
	logger  *zap.Logger
	now     func() time.Time
}

// CreateURLRepository returns a URLRepository over db, which InitDB must
// already have migrated for d.
func CreateURLRepository(db *sql.DB, d Dialect, logger *zap.Logger) *URLRepository {
	return &URLRepository{
		db:      db,
		dialect: d,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanURL(row rowScanner) (storage.URLRecord, error) {
	var (
		r         storage.URLRecord
		createdBy sql.NullString
		updatedAt sql.NullTime
		updatedBy sql.NullString
	)
	if err := row.Scan(&r.ID, &r.URL, &r.IsDeleted, &r.CreatedAt, &createdBy, &updatedAt, &updatedBy); err != nil {
		return storage.URLRecord{}, err
	}
	if createdBy.Valid {
		r.CreatedBy = &createdBy.String
	}
	if updatedAt.Valid {
		r.UpdatedAt = &updatedAt.Time
	}
	if updatedBy.Valid {
		r.UpdatedBy = &updatedBy.String
	}
	return r, nil
}

func (r *URLRepository) newRecord(in storage.URLCreate) storage.URLRecord {
	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return storage.URLRecord{
		ID:        id,
		URL:       in.URL,
		CreatedAt: r.now(),
		CreatedBy: in.CreatedBy,
	}
}

func (r *URLRepository) Create(ctx context.Context, in storage.URLCreate) (storage.URLRecord, error) {
	rec := r.newRecord(in)

	_, err := r.db.ExecContext(ctx, r.dialect.rebind(insertURL), rec.ID, rec.URL, rec.CreatedAt, rec.CreatedBy)
	if err != nil {
		r.logger.Debug("url insert failed", zap.String("url", rec.URL), zap.Error(err))
		return storage.URLRecord{}, classify("create", err)
	}
	return rec, nil
}

// CreateMany inserts in within one transaction. Either every record is stored or none is.
func (r *URLRepository) CreateMany(ctx context.Context, in []storage.URLCreate) ([]storage.URLRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classify("create many", err)
	}

	stmt := r.dialect.rebind(insertURL)
	created := make([]storage.URLRecord, 0, len(in))
	for _, c := range in {
		rec := r.newRecord(c)
		if _, err := tx.ExecContext(ctx, stmt, rec.ID, rec.URL, rec.CreatedAt, rec.CreatedBy); err != nil {
			_ = tx.Rollback()
			r.logger.Debug("batch insert rolled back", zap.String("url", rec.URL), zap.Error(err))
			return nil, classify("create many", err)
		}
		created = append(created, rec)
	}

	if err := tx.Commit(); err != nil {
		return nil, classify("create many", err)
	}
	return created, nil
}

// FindActiveByID returns storage.ErrNotFound for absent and soft-deleted records.
func (r *URLRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (storage.URLRecord, error) {
	q, args := activeURLs().Where("id = ?", id).Build(r.dialect)

	rec, err := scanURL(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return storage.URLRecord{}, classify("find", err)
	}
	return rec, nil
}

func (r *URLRepository) List(ctx context.Context, page storage.Page) ([]storage.URLRecord, error) {
	q, args := activeURLs().OrderBy("created_at, id").Page(page).Build(r.dialect)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify("list", err)
	}
	defer rows.Close()

	records := make([]storage.URLRecord, 0)
	for rows.Next() {
		rec, err := scanURL(rows)
		if err != nil {
			return nil, classify("list", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list", err)
	}
	return records, nil
}

func (r *URLRepository) Update(ctx context.Context, id uuid.UUID, in storage.URLUpdate) (storage.URLRecord, error) {
	q, args := activeURLUpdate("url = ?, updated_at = ?, updated_by = ?", in.URL, r.now(), in.UpdatedBy).
		Where("id = ?", id).
		Build(r.dialect)

	rec, err := scanURL(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return storage.URLRecord{}, classify("update", err)
	}
	return rec, nil
}

// SoftDelete marks id deleted and returns the updated record.
func (r *URLRepository) SoftDelete(ctx context.Context, id uuid.UUID) (storage.URLRecord, error) {
	q, args := activeURLUpdate("is_deleted = TRUE").Where("id = ?", id).Build(r.dialect)

	rec, err := scanURL(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return storage.URLRecord{}, classify("delete", err)
	}
	r.logger.Info("url soft-deleted", zap.String("id", id.String()))
	return rec, nil
}
