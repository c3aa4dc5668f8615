package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/app/service"
	"github.com/atinyakov/go-url-redirector/internal/models"
	"github.com/atinyakov/go-url-redirector/internal/storage"
)

// PostHandler serves the URL creation routes.
type PostHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

// NewPost returns a PostHandler backed by s.
func NewPost(s service.URLServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// CreateURL handles POST /urls/url.
func (h *PostHandler) CreateURL(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	var request models.URLRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	r, err := h.service.CreateURL(ctx, request.URL, request.CreatedBy)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusCreated, r)
}

// CreateURLs handles POST /urls/urls. The batch is stored all or nothing.
func (h *PostHandler) CreateURLs(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	var request []models.URLRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	in := make([]storage.URLCreate, 0, len(request))
	for _, u := range request {
		in = append(in, storage.URLCreate{URL: u.URL, CreatedBy: u.CreatedBy})
	}

	created, err := h.service.CreateURLs(ctx, in)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusCreated, created)
}
