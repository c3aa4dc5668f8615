package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/app/service"
	"github.com/atinyakov/go-url-redirector/internal/models"
	"github.com/atinyakov/go-url-redirector/internal/storage"
)

// PutHandler serves PUT /urls/{id}.
type PutHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

// NewPut returns a PutHandler backed by s.
func NewPut(s service.URLServiceIface, l *zap.Logger) *PutHandler {
	return &PutHandler{
		service: s,
		logger:  l,
	}
}

// UpdateURL replaces the target of {id}. Deleted records answer 404.
func (h *PutHandler) UpdateURL(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	id, err := idParam(req)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	var request models.URLRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	r, err := h.service.UpdateURL(ctx, id, storage.URLUpdate{URL: request.URL, UpdatedBy: request.UpdatedBy})
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, r)
}
