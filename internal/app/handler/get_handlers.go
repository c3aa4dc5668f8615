package handler

import (
	"context"
	"net/http"
	"runtime"

	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/app/service"
	"github.com/atinyakov/go-url-redirector/internal/middleware"
	"github.com/atinyakov/go-url-redirector/internal/models"
	"github.com/atinyakov/go-url-redirector/internal/storage"
)

const apiVersion = "v1"

// GetHandler serves the read-only routes and the redirect itself.
type GetHandler struct {
	service  service.URLServiceIface
	statuses service.StatusServiceIface
	resolver service.ResolverIface
	logger   *zap.Logger
}

// NewGet wires a GetHandler to its services.
func NewGet(s service.URLServiceIface, st service.StatusServiceIface, r service.ResolverIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service:  s,
		statuses: st,
		resolver: r,
		logger:   l,
	}
}

// Version answers {"version": "v1"}.
func (h *GetHandler) Version(res http.ResponseWriter, _ *http.Request) {
	writeJSON(res, http.StatusOK, models.VersionResponse{Version: apiVersion})
}

// Ping reports the database version, or "not available" when it cannot be read.
func (h *GetHandler) Ping(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	db, err := h.service.Version(ctx)
	if err != nil {
		h.logger.Warn("database version unavailable", zap.Error(err))
		db = "not available"
	}

	writeJSON(res, http.StatusOK, models.PingResponse{API: apiVersion, Go: runtime.Version(), DB: db})
}

// Redirect resolves {id}, records the request and answers 307.
func (h *GetHandler) Redirect(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	id, err := idParam(req)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}
	userID, err := optionalUUID(req, "user_id")
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}
	method, err := storage.ParseMethod(req.Method)
	if err != nil {
		writeError(res, http.StatusMethodNotAllowed, err.Error())
		return
	}

	url, err := h.resolver.Resolve(ctx, id, userID, method, middleware.StripPort(req.Host))
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	res.Header().Set("Location", url)
	res.WriteHeader(http.StatusTemporaryRedirect)
}

// GetURL returns the record {id}, deleted or not.
func (h *GetHandler) GetURL(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	id, err := idParam(req)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	r, err := h.service.GetURL(ctx, id)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, r)
}

// ListURLs returns a page of URL records.
func (h *GetHandler) ListURLs(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	page, err := pageQuery(req)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	urls, err := h.service.ListURLs(ctx, page)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, urls)
}

// ListStatuses returns a page of audit rows.
func (h *GetHandler) ListStatuses(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	var (
		filter storage.StatusFilter
		err    error
	)
	if filter.URLID, err = optionalUUID(req, "url_id"); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}
	if filter.UserID, err = optionalUUID(req, "user_id"); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}
	filter.Host = req.URL.Query().Get("host")
	if m := req.URL.Query().Get("method"); m != "" {
		if filter.Method, err = storage.ParseMethod(m); err != nil {
			writeServiceError(res, h.logger, validationError("%s", err.Error()))
			return
		}
	}

	page, err := pageQuery(req)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	statuses, err := h.statuses.ListStatuses(ctx, filter, page)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, statuses)
}
