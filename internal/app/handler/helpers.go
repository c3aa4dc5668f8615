// Package handler implements the REST surface of the redirector: URL
// management, status listing, the redirect endpoint and the health checks.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/app/service"
	"github.com/atinyakov/go-url-redirector/internal/models"
	"github.com/atinyakov/go-url-redirector/internal/storage"
)

const (
	maxBodyBytes = 1 << 20
	storeTimeout = 3 * time.Second
)

// malformedRequest represents an error with a malformed HTTP request.
type malformedRequest struct {
	status int
	msg    string
}

func (mr *malformedRequest) Error() string {
	return mr.msg
}

func badRequest(status int, format string, args ...any) *malformedRequest {
	return &malformedRequest{status: status, msg: fmt.Sprintf(format, args...)}
}

// decodeJSONBody decodes a single JSON value from the request body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
		if mediaType != "application/json" {
			return badRequest(http.StatusUnsupportedMediaType, "Content-Type header is not application/json")
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return badRequest(http.StatusBadRequest, "Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return badRequest(http.StatusBadRequest, "Request body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			return badRequest(http.StatusBadRequest, "Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return badRequest(http.StatusBadRequest, "Request body contains unknown field %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
		case errors.Is(err, io.EOF):
			return badRequest(http.StatusBadRequest, "Request body must not be empty")
		case errors.As(err, &maxBytesError):
			return badRequest(http.StatusRequestEntityTooLarge, "Request body must not be larger than 1MB")
		default:
			return err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return badRequest(http.StatusBadRequest, "Request body must only contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

// writeServiceError maps the error set of the services onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	var mr *malformedRequest
	var se *storage.StoreError

	switch {
	case errors.As(err, &mr):
		writeError(w, mr.status, mr.msg)
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, storage.ErrDuplicate):
		writeError(w, http.StatusUnprocessableEntity, "URL already exists")
	case errors.As(err, &se):
		log.Warn("store unavailable", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
	case errors.Is(err, storage.ErrForeignKey):
		log.Error("status references a missing url", zap.Error(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	default:
		log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", service.ErrValidation, fmt.Sprintf(format, args...))
}

func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, validationError("id is not a valid uuid")
	}
	return id, nil
}

// optionalUUID parses a query parameter that may be absent.
func optionalUUID(r *http.Request, name string) (uuid.NullUUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.NullUUID{}, validationError("%s is not a valid uuid", name)
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, validationError("%s must be an integer", name)
	}
	return n, nil
}

func pageQuery(r *http.Request) (storage.Page, error) {
	skip, err := intQuery(r, "skip", 0)
	if err != nil {
		return storage.Page{}, err
	}
	limit, err := intQuery(r, "limit", storage.DefaultLimit)
	if err != nil {
		return storage.Page{}, err
	}

	page := storage.Page{Skip: skip, Limit: limit}
	return page, service.ValidatePage(page)
}
