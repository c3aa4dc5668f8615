package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLRecord is a registered destination URL.
type URLRecord struct {
	ID        uuid.UUID  `json:"id"`
	URL       string     `json:"url"`
	IsDeleted bool       `json:"is_delete"`
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy *string    `json:"created_by"`
	UpdatedAt *time.Time `json:"updated_at"`
	UpdatedBy *string    `json:"updated_by"`
}

// URLCreate holds the fields accepted when a URL is registered.
// A zero ID is replaced by a fresh UUID.
type URLCreate struct {
	ID        uuid.UUID
	URL       string
	CreatedBy *string
}

// URLUpdate holds the mutable fields of a URL record.
type URLUpdate struct {
	URL       string
	UpdatedBy *string
}

// Method is the HTTP method recorded on a status row.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// ParseMethod validates s against the recorded method set.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToUpper(s)); m {
	case MethodGet, MethodPost, MethodPatch, MethodDelete:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported method %q", s)
	}
}

// StatusRecord is one append-only audit row written on a successful resolution.
type StatusRecord struct {
	ID        uuid.UUID     `json:"id"`
	URLID     uuid.UUID     `json:"url_id"`
	UserID    uuid.NullUUID `json:"user_id"`
	Host      string        `json:"host"`
	Method    Method        `json:"method"`
	CreatedAt time.Time     `json:"created_at"`
	CreatedBy *string       `json:"created_by"`
}

// StatusCreate holds the fields of a new audit row.
type StatusCreate struct {
	URLID     uuid.UUID
	UserID    uuid.NullUUID
	Host      string
	Method    Method
	CreatedBy *string
}

// StatusFilter narrows a status listing. Zero-valued fields are ignored.
type StatusFilter struct {
	URLID  uuid.NullUUID
	UserID uuid.NullUUID
	Host   string
	Method Method
}

// Page is an offset/limit window over a listing.
type Page struct {
	Skip  int
	Limit int
}

// DefaultLimit is used when a listing does not specify a limit.
const DefaultLimit = 100

// DefaultPage returns the first DefaultLimit rows.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}
