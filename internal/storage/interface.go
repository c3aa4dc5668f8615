// Package storage defines the records of the redirector, the contract every
// record store satisfies and an in-memory implementation of that contract.
package storage

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence contract of one entity with soft-delete semantics.
// Every read and update path only sees rows that are not soft-deleted.
type Store[T any, C any, U any] interface {
	// Create inserts one record, assigning an id when the input has none.
	Create(ctx context.Context, in C) (T, error)
	// CreateMany inserts all records or none of them.
	CreateMany(ctx context.Context, in []C) ([]T, error)
	// FindActiveByID returns ErrNotFound for absent and soft-deleted ids.
	FindActiveByID(ctx context.Context, id uuid.UUID) (T, error)
	List(ctx context.Context, page Page) ([]T, error)
	Update(ctx context.Context, id uuid.UUID, in U) (T, error)
	// SoftDelete flips is_deleted with a single compare-and-set and returns
	// the deleted record. A second call for the same id returns ErrNotFound.
	SoftDelete(ctx context.Context, id uuid.UUID) (T, error)
}

// URLStore is the Store of URL records.
type URLStore = Store[URLRecord, URLCreate, URLUpdate]

// AuditLog is the append-only store of status records.
type AuditLog interface {
	// InsertAuditEntry returns ErrForeignKey when the URL row does not exist.
	InsertAuditEntry(ctx context.Context, in StatusCreate) (StatusRecord, error)
	ListStatuses(ctx context.Context, filter StatusFilter, page Page) ([]StatusRecord, error)
}

// Pinger reports backend liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}
