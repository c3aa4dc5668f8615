package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage keeps URL and status records in process memory.
// It is used when no database is configured.
type MemoryStorage struct {
	mu       sync.RWMutex
	urls     map[uuid.UUID]*URLRecord
	order    []uuid.UUID
	statuses []StatusRecord
	now      func() time.Time
}

// CreateMemoryStorage returns an empty store.
func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		urls: make(map[uuid.UUID]*URLRecord),
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

// activeByURL must be called with mu held.
func (m *MemoryStorage) activeByURL(url string, except uuid.UUID) bool {
	for id, r := range m.urls {
		if id != except && !r.IsDeleted && r.URL == url {
			return true
		}
	}
	return false
}

// insert must be called with mu held for writing.
func (m *MemoryStorage) insert(in URLCreate) (URLRecord, error) {
	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	if _, exists := m.urls[id]; exists {
		return URLRecord{}, ErrDuplicate
	}
	if m.activeByURL(in.URL, uuid.Nil) {
		return URLRecord{}, ErrDuplicate
	}

	r := &URLRecord{
		ID:        id,
		URL:       in.URL,
		CreatedAt: m.now(),
		CreatedBy: in.CreatedBy,
	}
	m.urls[id] = r
	m.order = append(m.order, id)
	return *r, nil
}

func (m *MemoryStorage) Create(_ context.Context, in URLCreate) (URLRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.insert(in)
}

func (m *MemoryStorage) CreateMany(_ context.Context, in []URLCreate) ([]URLRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := make([]URLRecord, 0, len(in))
	for _, c := range in {
		r, err := m.insert(c)
		if err != nil {
			m.rollback(created)
			return nil, err
		}
		created = append(created, r)
	}
	return created, nil
}

// rollback removes records inserted by a failed batch. mu must be held.
func (m *MemoryStorage) rollback(created []URLRecord) {
	if len(created) == 0 {
		return
	}
	for _, r := range created {
		delete(m.urls, r.ID)
	}
	m.order = m.order[:len(m.order)-len(created)]
}

func (m *MemoryStorage) FindActiveByID(_ context.Context, id uuid.UUID) (URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.urls[id]
	if !ok || r.IsDeleted {
		return URLRecord{}, ErrNotFound
	}
	return *r, nil
}

func (m *MemoryStorage) List(_ context.Context, page Page) ([]URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]URLRecord, 0)
	skipped := 0
	for _, id := range m.order {
		r := m.urls[id]
		if r.IsDeleted {
			continue
		}
		if skipped < page.Skip {
			skipped++
			continue
		}
		if len(records) == page.Limit {
			break
		}
		records = append(records, *r)
	}
	return records, nil
}

func (m *MemoryStorage) Update(_ context.Context, id uuid.UUID, in URLUpdate) (URLRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.urls[id]
	if !ok || r.IsDeleted {
		return URLRecord{}, ErrNotFound
	}
	if m.activeByURL(in.URL, id) {
		return URLRecord{}, ErrDuplicate
	}

	now := m.now()
	r.URL = in.URL
	r.UpdatedAt = &now
	r.UpdatedBy = in.UpdatedBy
	return *r, nil
}

func (m *MemoryStorage) SoftDelete(_ context.Context, id uuid.UUID) (URLRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.urls[id]
	if !ok || r.IsDeleted {
		return URLRecord{}, ErrNotFound
	}
	r.IsDeleted = true
	return *r, nil
}

func (m *MemoryStorage) InsertAuditEntry(_ context.Context, in StatusCreate) (StatusRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// deleted URLs are still valid references
	if _, ok := m.urls[in.URLID]; !ok {
		return StatusRecord{}, ErrForeignKey
	}

	s := StatusRecord{
		ID:        uuid.New(),
		URLID:     in.URLID,
		UserID:    in.UserID,
		Host:      in.Host,
		Method:    in.Method,
		CreatedAt: m.now(),
		CreatedBy: in.CreatedBy,
	}
	m.statuses = append(m.statuses, s)
	return s, nil
}

func (m *MemoryStorage) ListStatuses(_ context.Context, filter StatusFilter, page Page) ([]StatusRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]StatusRecord, 0)
	skipped := 0
	for _, s := range m.statuses {
		if !filter.matches(s) {
			continue
		}
		if skipped < page.Skip {
			skipped++
			continue
		}
		if len(records) == page.Limit {
			break
		}
		records = append(records, s)
	}
	return records, nil
}

func (f StatusFilter) matches(s StatusRecord) bool {
	if f.URLID.Valid && s.URLID != f.URLID.UUID {
		return false
	}
	if f.UserID.Valid && (!s.UserID.Valid || s.UserID.UUID != f.UserID.UUID) {
		return false
	}
	if f.Host != "" && s.Host != f.Host {
		return false
	}
	if f.Method != "" && s.Method != f.Method {
		return false
	}
	return true
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}

func (m *MemoryStorage) Version(_ context.Context) (string, error) {
	return "memory", nil
}
