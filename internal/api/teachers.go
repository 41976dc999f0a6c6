package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yenaing-dev/schoolnet/internal/store"
)

type TeachersHandler struct {
	store store.Store
}

func NewTeachersHandler(s store.Store) *TeachersHandler {
	return &TeachersHandler{store: s}
}

type TeacherRequest struct {
	Center string `json:"center"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Gender string `json:"gender,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

func (h *TeachersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Center == "" || req.Name == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "center, name and code required")
		return
	}

	center, err := h.store.GetCenterByName(r.Context(), req.Center)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if center == nil {
		writeError(w, http.StatusNotFound, "learning center not found")
		return
	}

	t := &store.Teacher{
		Code:     req.Code,
		Name:     req.Name,
		Gender:   req.Gender,
		Phone:    req.Phone,
		CenterID: center.ID,
	}
	if err := h.store.CreateTeacher(r.Context(), t); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	t.CenterName = center.Name
	writeJSON(w, http.StatusCreated, t)
}

func (h *TeachersHandler) List(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.store.ListTeachers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if teachers == nil {
		teachers = []*store.Teacher{}
	}
	writeJSON(w, http.StatusOK, teachers)
}

func (h *TeachersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid teacher id")
		return
	}
	t, err := h.store.GetTeacher(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if t == nil {
		writeError(w, http.StatusNotFound, "teacher not found")
		return
	}

	var req TeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Center != "" {
		center, err := h.store.GetCenterByName(r.Context(), req.Center)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if center == nil {
			writeError(w, http.StatusNotFound, "learning center not found")
			return
		}
		t.CenterID = center.ID
		t.CenterName = center.Name
	}
	if req.Code != "" {
		t.Code = req.Code
	}
	if req.Name != "" {
		t.Name = req.Name
	}
	t.Gender = req.Gender
	t.Phone = req.Phone

	if err := h.store.UpdateTeacher(r.Context(), t); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TeachersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid teacher id")
		return
	}
	if err := h.store.DeleteTeacher(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
