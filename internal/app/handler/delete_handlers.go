package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/app/service"
)

// DeleteHandler serves DELETE /urls/{id}.
type DeleteHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

// NewDelete returns a DeleteHandler backed by s.
func NewDelete(s service.URLServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
	}
}

// DeleteURL soft-deletes {id} and answers 410 with the deleted record.
func (h *DeleteHandler) DeleteURL(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
	defer cancel()

	id, err := idParam(req)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	r, err := h.service.DeleteURL(ctx, id)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusGone, r)
}
