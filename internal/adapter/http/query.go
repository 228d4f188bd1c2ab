package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ad-console/internal/core/domain"
)

const (
	defaultPage = 0
	defaultSize = 10
)

// handleList returns one page of the full campaign set in the page
// envelope the console expects. Missing page/size fall back to 0 and 10.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: "invalid 'page' parameter"})
		return
	}
	size, err := queryInt(r, "size", defaultSize)
	if err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: "invalid 'size' parameter"})
		return
	}
	result, err := h.svc.List(r.Context(), page, size)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Filtered listings are unpaged: the handlers below return the full
// result set as a bare array, matching the behavior existing console
// callers depend on.

func (h *Handler) handleListByAdvertiser(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListByAdvertiser(r.Context(), chi.URLParam(r, "advertiserId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, campaigns)
}

func (h *Handler) handleListByStatus(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListByStatus(r.Context(), domain.Status(chi.URLParam(r, "status")))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, campaigns)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, campaigns)
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, stats)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
