package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yenaing-dev/schoolnet/internal/cache"
	"github.com/yenaing-dev/schoolnet/internal/events"
	"github.com/yenaing-dev/schoolnet/internal/store"
)

type StudentsHandler struct {
	store  store.Store
	events events.Client
	cache  *cache.Cache
}

func NewStudentsHandler(s store.Store, ev events.Client, ca *cache.Cache) *StudentsHandler {
	return &StudentsHandler{store: s, events: ev, cache: ca}
}

type StudentRequest struct {
	Center       string `json:"center"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	AcademicYear string `json:"academic_year"`
	Grade        string `json:"grade"`
	Gender       string `json:"gender"`
	Disability   bool   `json:"disability"`

	GuardianName string `json:"guardian_name,omitempty"`
	GuardianNRC  string `json:"guardian_nrc,omitempty"`

	FamilyMembers int `json:"family_members"`
	Over18Male    int `json:"over18_male"`
	Over18Female  int `json:"over18_female"`
	Under18Male   int `json:"under18_male"`
	Under18Female int `json:"under18_female"`

	Status         string `json:"status,omitempty"`
	AcademicReview string `json:"academic_review,omitempty"`
	KidsClub       bool   `json:"kids_club"`
	Dropout        bool   `json:"dropout"`
}

func (h *StudentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
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

	existing, err := h.store.GetStudentByCode(r.Context(), req.Code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "student code already exists")
		return
	}

	st := studentFromRequest(&req, center.ID)
	if err := h.store.CreateStudent(r.Context(), st); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	st.CenterName = center.Name

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), "dashboard:*")
	}
	if h.events != nil {
		_ = h.events.Publish(events.SubjectStudentCreated(st.ID.String()), events.StudentCreatedEvent{
			StudentID: st.ID.String(),
			Code:      st.Code,
			Center:    center.Name,
		})
	}

	writeJSON(w, http.StatusCreated, st)
}

func studentFromRequest(req *StudentRequest, centerID uuid.UUID) *store.Student {
	status := store.StudentStatus(req.Status)
	if status == "" {
		status = store.StudentActive
	}
	return &store.Student{
		Code:           req.Code,
		Name:           req.Name,
		AcademicYear:   req.AcademicYear,
		Grade:          req.Grade,
		Gender:         req.Gender,
		Disability:     req.Disability,
		GuardianName:   req.GuardianName,
		GuardianNRC:    req.GuardianNRC,
		FamilyMembers:  req.FamilyMembers,
		Over18Male:     req.Over18Male,
		Over18Female:   req.Over18Female,
		Under18Male:    req.Under18Male,
		Under18Female:  req.Under18Female,
		Status:         status,
		AcademicReview: req.AcademicReview,
		KidsClub:       req.KidsClub,
		Dropout:        req.Dropout,
		CenterID:       centerID,
	}
}

func (h *StudentsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.StudentFilter{
		AcademicYear: r.URL.Query().Get("academic_year"),
		Grade:        r.URL.Query().Get("grade"),
	}
	students, err := h.store.ListStudents(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if students == nil {
		students = []*store.Student{}
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentsHandler) ListByCenter(w http.ResponseWriter, r *http.Request) {
	centerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid center id")
		return
	}
	students, err := h.store.ListStudents(r.Context(), store.StudentFilter{CenterID: &centerID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if students == nil {
		students = []*store.Student{}
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student id")
		return
	}
	st, err := h.store.GetStudent(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if st == nil {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StudentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student id")
		return
	}
	st, err := h.store.GetStudent(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if st == nil {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}

	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
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

	updated := studentFromRequest(&req, center.ID)
	updated.ID = st.ID
	updated.CreatedAt = st.CreatedAt
	if err := h.store.UpdateStudent(r.Context(), updated); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	updated.CenterName = center.Name

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), "dashboard:*")
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *StudentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student id")
		return
	}
	if err := h.store.DeleteStudent(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(r.Context(), "dashboard:*")
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
