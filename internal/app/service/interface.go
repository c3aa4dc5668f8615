package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

// URLStorage is the URL record store consumed by the services.
type URLStorage interface {
	storage.URLStore
}

// StatusStorage is the audit log consumed by the resolver and status listing.
type StatusStorage interface {
	storage.AuditLog
}

// URLServiceIface is the URL management surface used by the HTTP handlers.
type URLServiceIface interface {
	CreateURL(ctx context.Context, url string, createdBy *string) (storage.URLRecord, error)
	CreateURLs(ctx context.Context, in []storage.URLCreate) ([]storage.URLRecord, error)
	GetURL(ctx context.Context, id uuid.UUID) (storage.URLRecord, error)
	ListURLs(ctx context.Context, page storage.Page) ([]storage.URLRecord, error)
	UpdateURL(ctx context.Context, id uuid.UUID, in storage.URLUpdate) (storage.URLRecord, error)
	DeleteURL(ctx context.Context, id uuid.UUID) (storage.URLRecord, error)
	PingContext(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}

// StatusServiceIface lists audit rows.
type StatusServiceIface interface {
	ListStatuses(ctx context.Context, filter storage.StatusFilter, page storage.Page) ([]storage.StatusRecord, error)
}

// ResolverIface resolves an identifier and records the request.
type ResolverIface interface {
	Resolve(ctx context.Context, id uuid.UUID, userID uuid.NullUUID, method storage.Method, host string) (string, error)
}
