package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-console/internal/core/domain"
)

// handleCreate inserts a new campaign. Duplicate ids yield 409, invalid
// payloads 400.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var c domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: "invalid JSON: " + err.Error()})
		return
	}
	created, err := h.svc.Create(r.Context(), c)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, created)
}

// handleGet fetches one campaign by its campaign id.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, c)
}

// handleUpdate fully replaces the mutable fields of an existing campaign.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var c domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: "invalid JSON: " + err.Error()})
		return
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), c)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetStatus applies a lifecycle transition from a {"status": "..."}
// body.
func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Message: "invalid JSON: " + err.Error()})
		return
	}
	c, err := h.svc.SetStatus(r.Context(), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, c)
}
