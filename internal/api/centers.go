package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yenaing-dev/schoolnet/internal/store"
)

type CentersHandler struct {
	store store.Store
}

func NewCentersHandler(s store.Store) *CentersHandler {
	return &CentersHandler{store: s}
}

type CenterRequest struct {
	Name     string `json:"name"`
	Township string `json:"township,omitempty"`
	Address  string `json:"address,omitempty"`
}

func (h *CentersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	existing, err := h.store.GetCenterByName(r.Context(), req.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "learning center already exists")
		return
	}

	c := &store.LearningCenter{Name: req.Name, Township: req.Township, Address: req.Address}
	if err := h.store.CreateCenter(r.Context(), c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CentersHandler) List(w http.ResponseWriter, r *http.Request) {
	centers, err := h.store.ListCenters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if centers == nil {
		centers = []*store.LearningCenter{}
	}
	writeJSON(w, http.StatusOK, centers)
}

func (h *CentersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid center id")
		return
	}
	c, err := h.store.GetCenter(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "learning center not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CentersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid center id")
		return
	}
	c, err := h.store.GetCenter(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "learning center not found")
		return
	}

	var req CenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name != "" {
		c.Name = req.Name
	}
	c.Township = req.Township
	c.Address = req.Address

	if err := h.store.UpdateCenter(r.Context(), c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CentersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid center id")
		return
	}
	if err := h.store.DeleteCenter(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
