package repository

import (
	"strings"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

const (
	urlColumns    = "id, url, is_deleted, created_at, created_by, updated_at, updated_by"
	statusColumns = "id, url_id, user_id, host, method, created_at, created_by"
)

// query is a minimal statement builder. Conditions are joined with AND and
// placeholders are written as '?' until Build rebinds them for the dialect.
type query struct {
	base      string
	where     []string
	args      []any
	order     string
	page      *storage.Page
	returning string
}

// activeURLs selects URL rows that are not soft-deleted. Every URL read goes
// through it, so no lookup can see a deleted row.
func activeURLs() *query {
	return &query{
		base:  "SELECT " + urlColumns + " FROM urls",
		where: []string{"is_deleted = FALSE"},
	}
}

// activeURLUpdate updates URL rows that are not soft-deleted and returns the
// new row state. A soft delete is this update with "is_deleted = TRUE", which
// makes it a compare-and-set on the flag.
func activeURLUpdate(set string, args ...any) *query {
	return &query{
		base:      "UPDATE urls SET " + set,
		where:     []string{"is_deleted = FALSE"},
		args:      args,
		returning: urlColumns,
	}
}

func statuses() *query {
	return &query{base: "SELECT " + statusColumns + " FROM statuses"}
}

func (q *query) Where(cond string, args ...any) *query {
	q.where = append(q.where, cond)
	q.args = append(q.args, args...)
	return q
}

func (q *query) OrderBy(order string) *query {
	q.order = order
	return q
}

func (q *query) Page(p storage.Page) *query {
	q.page = &p
	return q
}

func (q *query) Build(d Dialect) (string, []any) {
	var b strings.Builder
	b.WriteString(q.base)

	if len(q.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.where, " AND "))
	}
	if q.order != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.order)
	}

	args := q.args
	if q.page != nil {
		b.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, q.page.Limit, q.page.Skip)
	}
	if q.returning != "" {
		b.WriteString(" RETURNING ")
		b.WriteString(q.returning)
	}
	b.WriteString(";")

	return d.rebind(b.String()), args
}
