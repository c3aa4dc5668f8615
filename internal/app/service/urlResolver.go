// Package service holds the URL management services and the redirect resolver.
package service

import (
	"context"
	"errors"
	"reflect"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

const instrumentationName = "github.com/atinyakov/go-url-redirector/internal/app/service"

// Resolver turns an identifier into its destination URL and records one
// audit entry for every successful resolution.
type Resolver struct {
	urls     URLStorage
	statuses StatusStorage
	logger   *zap.Logger
	tracer   trace.Tracer
}

// NewResolver creates a Resolver. A nil tp, typed or not, disables tracing.
func NewResolver(urls URLStorage, statuses StatusStorage, logger *zap.Logger, tp trace.TracerProvider) *Resolver {
	if isNilProvider(tp) {
		tp = noop.NewTracerProvider()
	}
	return &Resolver{
		urls:     urls,
		statuses: statuses,
		logger:   logger,
		tracer:   tp.Tracer(instrumentationName),
	}
}

// isNilProvider also catches a nil pointer stored in the interface, such as
// a (*sdktrace.TracerProvider)(nil).
func isNilProvider(tp trace.TracerProvider) bool {
	if tp == nil {
		return true
	}
	v := reflect.ValueOf(tp)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Resolve returns the destination of id. Absent and soft-deleted records give
// storage.ErrNotFound and write nothing. Infrastructure failures come back as
// *storage.StoreError and may be retried.
func (r *Resolver) Resolve(ctx context.Context, id uuid.UUID, userID uuid.NullUUID, method storage.Method, host string) (string, error) {
	ctx, span := r.tracer.Start(ctx, "redirect.resolve", trace.WithAttributes(
		attribute.String("url.id", id.String()),
		attribute.String("http.method", string(method)),
		attribute.String("http.host", host),
	))
	defer span.End()

	url, err := r.resolve(ctx, id, userID, method, host)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return url, nil
}

func (r *Resolver) resolve(ctx context.Context, id uuid.UUID, userID uuid.NullUUID, method storage.Method, host string) (string, error) {
	rec, err := r.urls.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", storage.ErrNotFound
		}
		r.logger.Warn("url lookup failed", zap.String("id", id.String()), zap.Error(err))
		return "", storage.AsStoreError("find url", err)
	}

	_, err = r.statuses.InsertAuditEntry(ctx, storage.StatusCreate{
		URLID:  rec.ID,
		UserID: userID,
		Host:   host,
		Method: method,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			// the url row vanished between lookup and insert
			r.logger.Error("audit entry rejected", zap.String("url_id", rec.ID.String()), zap.Error(err))
			return "", err
		}
		r.logger.Warn("audit entry not written", zap.String("url_id", rec.ID.String()), zap.Error(err))
		return "", storage.AsStoreError("insert status", err)
	}

	if err := ctx.Err(); err != nil {
		return "", &storage.StoreError{Op: "resolve", Err: err}
	}

	return rec.URL, nil
}
