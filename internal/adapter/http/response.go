package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ad-console/internal/core/domain"
)

// errorResponse is the failure envelope. The console surfaces message
// verbatim, so messages must be human readable.
type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses: not found
// to 404, duplicate id to 409, validation failures to 400. Anything else
// is logged and reported as a plain 500 without leaking internals.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, h.logger, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateID):
		writeJSON(w, h.logger, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.As(err, &vErr):
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: vErr.Error()})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		writeJSON(w, h.logger, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}
