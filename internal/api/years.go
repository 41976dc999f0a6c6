package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yenaing-dev/schoolnet/internal/store"
)

type YearsHandler struct {
	store store.Store
}

func NewYearsHandler(s store.Store) *YearsHandler {
	return &YearsHandler{store: s}
}

func (h *YearsHandler) List(w http.ResponseWriter, r *http.Request) {
	years, err := h.store.ListAcademicYears(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if years == nil {
		years = []*store.AcademicYear{}
	}
	writeJSON(w, http.StatusOK, years)
}

// UpdateStatus toggles an academic year open or closed. Nothing else about
// a year is mutable once it exists.
func (h *YearsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid academic year id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status required")
		return
	}

	year, err := h.store.UpdateAcademicYearStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if year == nil {
		writeError(w, http.StatusNotFound, "academic year not found")
		return
	}
	writeJSON(w, http.StatusOK, year)
}
