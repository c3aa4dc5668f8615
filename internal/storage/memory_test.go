package storage_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

func TestMemoryStorage_CreateAndFind(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	created, err := mem.Create(ctx, storage.URLCreate{URL: "https://example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.IsDeleted)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := mem.FindActiveByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", found.URL)

	// same url again - should fail
	_, err = mem.Create(ctx, storage.URLCreate{URL: "https://example.com"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	_, err = mem.FindActiveByID(ctx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStorage_CreateKeepsGivenID(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	id := uuid.New()

	created, err := mem.Create(context.Background(), storage.URLCreate{ID: id, URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
}

func TestMemoryStorage_CreateManyIsAtomic(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	_, err := mem.CreateMany(ctx, []storage.URLCreate{
		{URL: "https://1.com"},
		{URL: "https://2.com"},
		{URL: "https://1.com"},
	})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	all, err := mem.List(ctx, storage.DefaultPage())
	require.NoError(t, err)
	assert.Empty(t, all)

	created, err := mem.CreateMany(ctx, []storage.URLCreate{{URL: "https://1.com"}, {URL: "https://2.com"}})
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestMemoryStorage_SoftDelete(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	created, err := mem.Create(ctx, storage.URLCreate{URL: "https://example.com"})
	require.NoError(t, err)

	deleted, err := mem.SoftDelete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)

	_, err = mem.SoftDelete(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = mem.FindActiveByID(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = mem.Update(ctx, created.ID, storage.URLUpdate{URL: "https://other.com"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := mem.List(ctx, storage.DefaultPage())
	require.NoError(t, err)
	assert.Empty(t, all)

	// the url of a deleted record may be registered again
	_, err = mem.Create(ctx, storage.URLCreate{URL: "https://example.com"})
	assert.NoError(t, err)
}

func TestMemoryStorage_ConcurrentSoftDelete(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	created, err := mem.Create(ctx, storage.URLCreate{URL: "https://example.com"})
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mem.SoftDelete(ctx, created.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, notFound int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, storage.ErrNotFound):
			notFound++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, notFound)
}

func TestMemoryStorage_Update(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	first, _ := mem.Create(ctx, storage.URLCreate{URL: "https://1.com"})
	_, _ = mem.Create(ctx, storage.URLCreate{URL: "https://2.com"})

	_, err := mem.Update(ctx, first.ID, storage.URLUpdate{URL: "https://2.com"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	by := "admin"
	updated, err := mem.Update(ctx, first.ID, storage.URLUpdate{URL: "https://3.com", UpdatedBy: &by})
	require.NoError(t, err)
	assert.Equal(t, "https://3.com", updated.URL)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, "admin", *updated.UpdatedBy)
}

func TestMemoryStorage_ListPaging(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	for _, u := range []string{"https://1.com", "https://2.com", "https://3.com"} {
		_, err := mem.Create(ctx, storage.URLCreate{URL: u})
		require.NoError(t, err)
	}

	page, err := mem.List(ctx, storage.Page{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "https://2.com", page[0].URL)
}

func TestMemoryStorage_AuditEntries(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	created, _ := mem.Create(ctx, storage.URLCreate{URL: "https://example.com"})
	user := uuid.NullUUID{UUID: uuid.New(), Valid: true}

	_, err := mem.InsertAuditEntry(ctx, storage.StatusCreate{URLID: created.ID, Host: "a.com", Method: storage.MethodGet})
	require.NoError(t, err)
	_, err = mem.InsertAuditEntry(ctx, storage.StatusCreate{URLID: created.ID, UserID: user, Host: "b.com", Method: storage.MethodGet})
	require.NoError(t, err)

	_, err = mem.InsertAuditEntry(ctx, storage.StatusCreate{URLID: uuid.New(), Host: "a.com", Method: storage.MethodGet})
	assert.ErrorIs(t, err, storage.ErrForeignKey)

	// history survives a soft delete
	_, err = mem.SoftDelete(ctx, created.ID)
	require.NoError(t, err)
	_, err = mem.InsertAuditEntry(ctx, storage.StatusCreate{URLID: created.ID, Host: "c.com", Method: storage.MethodPost})
	require.NoError(t, err)

	all, err := mem.ListStatuses(ctx, storage.StatusFilter{}, storage.DefaultPage())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byUser, err := mem.ListStatuses(ctx, storage.StatusFilter{UserID: user}, storage.DefaultPage())
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "b.com", byUser[0].Host)

	byMethod, err := mem.ListStatuses(ctx, storage.StatusFilter{Method: storage.MethodPost}, storage.DefaultPage())
	require.NoError(t, err)
	require.Len(t, byMethod, 1)
	assert.Equal(t, "c.com", byMethod[0].Host)
}

func TestParseMethod(t *testing.T) {
	m, err := storage.ParseMethod("get")
	require.NoError(t, err)
	assert.Equal(t, storage.MethodGet, m)

	_, err = storage.ParseMethod("HEAD")
	assert.Error(t, err)
}

func TestAsStoreError(t *testing.T) {
	assert.NoError(t, storage.AsStoreError("op", nil))
	assert.Equal(t, storage.ErrNotFound, storage.AsStoreError("op", storage.ErrNotFound))

	err := storage.AsStoreError("find", context.DeadlineExceeded)
	var se *storage.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "find", se.Op)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
