package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

const (
	selectActiveByID = "SELECT id, url, is_deleted, created_at, created_by, updated_at, updated_by FROM urls WHERE is_deleted = FALSE AND id = $1;"
	softDeleteByID   = "UPDATE urls SET is_deleted = TRUE WHERE is_deleted = FALSE AND id = $1 RETURNING id, url, is_deleted, created_at, created_by, updated_at, updated_by;"
)

var urlCols = []string{"id", "url", "is_deleted", "created_at", "created_by", "updated_at", "updated_by"}

// Helper to set up a mock DB and both repositories
func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *URLRepository, *StatusRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, CreateURLRepository(db, Postgres, zap.NewNop()), CreateStatusRepository(db, Postgres, zap.NewNop())
}

func TestRebind(t *testing.T) {
	assert.Equal(t, "a = $1 AND b = $2", Postgres.rebind("a = ? AND b = ?"))
	assert.Equal(t, "a = ? AND b = ?", SQLite.rebind("a = ? AND b = ?"))
}

func TestQueryBuilder_AlwaysFiltersDeleted(t *testing.T) {
	q, args := activeURLs().OrderBy("created_at, id").Page(storage.Page{Skip: 5, Limit: 10}).Build(Postgres)
	assert.Equal(t, "SELECT "+urlColumns+" FROM urls WHERE is_deleted = FALSE ORDER BY created_at, id LIMIT $1 OFFSET $2;", q)
	assert.Equal(t, []any{10, 5}, args)

	q, args = activeURLUpdate("url = ?", "https://a.com").Where("id = ?", "x").Build(SQLite)
	assert.Equal(t, "UPDATE urls SET url = ? WHERE is_deleted = FALSE AND id = ? RETURNING "+urlColumns+";", q)
	assert.Equal(t, []any{"https://a.com", "x"}, args)
}

func TestCreate(t *testing.T) {
	mock, repo, _ := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO urls (id, url, is_deleted, created_at, created_by) VALUES ($1, $2, FALSE, $3, $4);")).
		WithArgs(id, "https://example.com", sqlmock.AnyArg(), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec, err := repo.Create(context.Background(), storage.URLCreate{ID: id, URL: "https://example.com"})

	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.False(t, rec.IsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	mock, repo, _ := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO urls`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.Create(context.Background(), storage.URLCreate{URL: "https://example.com"})

	assert.ErrorIs(t, err, storage.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMany_RollsBack(t *testing.T) {
	mock, repo, _ := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO urls`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO urls`).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	_, err := repo.CreateMany(context.Background(), []storage.URLCreate{{URL: "https://1.com"}, {URL: "https://1.com"}})

	assert.ErrorIs(t, err, storage.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMany_Commits(t *testing.T) {
	mock, repo, _ := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO urls`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO urls`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateMany(context.Background(), []storage.URLCreate{{URL: "https://1.com"}, {URL: "https://2.com"}})

	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByID(t *testing.T) {
	mock, repo, _ := setupMockDB(t)
	id := uuid.New()
	createdBy := "admin"

	mock.ExpectQuery(regexp.QuoteMeta(selectActiveByID)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(urlCols).
			AddRow(id.String(), "https://example.com", false, time.Now(), createdBy, nil, nil))

	rec, err := repo.FindActiveByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "https://example.com", rec.URL)
	require.NotNil(t, rec.CreatedBy)
	assert.Equal(t, "admin", *rec.CreatedBy)
	assert.Nil(t, rec.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByID_NotFound(t *testing.T) {
	mock, repo, _ := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(selectActiveByID)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(urlCols))

	_, err := repo.FindActiveByID(context.Background(), id)

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByID_StoreError(t *testing.T) {
	mock, repo, _ := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(selectActiveByID)).
		WithArgs(id).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindActiveByID(context.Background(), id)

	var se *storage.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "find", se.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	mock, repo, _ := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+urlColumns+" FROM urls WHERE is_deleted = FALSE ORDER BY created_at, id LIMIT $1 OFFSET $2;")).
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows(urlCols).
			AddRow(uuid.NewString(), "https://1.com", false, time.Now(), nil, nil, nil).
			AddRow(uuid.NewString(), "https://2.com", false, time.Now(), nil, time.Now(), "bob"))

	recs, err := repo.List(context.Background(), storage.DefaultPage())

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "https://2.com", recs[1].URL)
	require.NotNil(t, recs[1].UpdatedBy)
	assert.Equal(t, "bob", *recs[1].UpdatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	mock, repo, _ := setupMockDB(t)
	id := uuid.New()
	by := "bob"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE urls SET url = $1, updated_at = $2, updated_by = $3 WHERE is_deleted = FALSE AND id = $4 RETURNING "+urlColumns+";")).
		WithArgs("https://new.com", sqlmock.AnyArg(), by, id).
		WillReturnRows(sqlmock.NewRows(urlCols).
			AddRow(id.String(), "https://new.com", false, time.Now(), nil, time.Now(), by))

	rec, err := repo.Update(context.Background(), id, storage.URLUpdate{URL: "https://new.com", UpdatedBy: &by})

	require.NoError(t, err)
	assert.Equal(t, "https://new.com", rec.URL)
	assert.NotNil(t, rec.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDelete(t *testing.T) {
	mock, repo, _ := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(softDeleteByID)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(urlCols).
			AddRow(id.String(), "https://example.com", true, time.Now(), nil, nil, nil))
	// the second call finds no active row
	mock.ExpectQuery(regexp.QuoteMeta(softDeleteByID)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(urlCols))

	rec, err := repo.SoftDelete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, rec.IsDeleted)

	_, err = repo.SoftDelete(context.Background(), id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAuditEntry(t *testing.T) {
	mock, _, statuses := setupMockDB(t)
	urlID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO statuses (id, url_id, user_id, host, method, created_at, created_by) VALUES ($1, $2, $3, $4, $5, $6, $7);")).
		WithArgs(sqlmock.AnyArg(), urlID, nil, "a.com", "GET", sqlmock.AnyArg(), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s, err := statuses.InsertAuditEntry(context.Background(), storage.StatusCreate{URLID: urlID, Host: "a.com", Method: storage.MethodGet})

	require.NoError(t, err)
	assert.Equal(t, urlID, s.URLID)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAuditEntry_ForeignKey(t *testing.T) {
	mock, _, statuses := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO statuses`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	_, err := statuses.InsertAuditEntry(context.Background(), storage.StatusCreate{URLID: uuid.New(), Host: "a.com", Method: storage.MethodGet})

	assert.ErrorIs(t, err, storage.ErrForeignKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStatuses_Filter(t *testing.T) {
	mock, _, statuses := setupMockDB(t)
	urlID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, url_id, user_id, host, method, created_at, created_by FROM statuses WHERE url_id = $1 AND method = $2 ORDER BY created_at, id LIMIT $3 OFFSET $4;")).
		WithArgs(urlID, "GET", 100, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "url_id", "user_id", "host", "method", "created_at", "created_by"}).
			AddRow(uuid.NewString(), urlID.String(), nil, "a.com", "GET", time.Now(), nil))

	recs, err := statuses.ListStatuses(context.Background(),
		storage.StatusFilter{URLID: uuid.NullUUID{UUID: urlID, Valid: true}, Method: storage.MethodGet},
		storage.DefaultPage())

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, storage.MethodGet, recs[0].Method)
	assert.False(t, recs[0].UserID.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT version();")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("PostgreSQL 16.2"))

	v, err := NewDB(db, Postgres).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL 16.2", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify("op", nil))
	assert.ErrorIs(t, classify("op", sql.ErrNoRows), storage.ErrNotFound)
	assert.ErrorIs(t, classify("op", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), storage.ErrDuplicate)
	assert.ErrorIs(t, classify("op", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), storage.ErrForeignKey)

	var se *storage.StoreError
	assert.ErrorAs(t, classify("op", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}), &se)
}
