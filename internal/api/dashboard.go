package api

import (
	"net/http"

	"github.com/yenaing-dev/schoolnet/internal/cache"
	"github.com/yenaing-dev/schoolnet/internal/engine"
	"github.com/yenaing-dev/schoolnet/internal/store"
)

// DashboardHandler serves the aggregate counts behind the admin dashboard.
// Aggregation itself is pure computation over whatever records exist at
// read time; the handler only fetches inputs and optionally caches the
// serialized answer.
type DashboardHandler struct {
	store store.Store
	cache *cache.Cache
}

func NewDashboardHandler(s store.Store, ca *cache.Cache) *DashboardHandler {
	return &DashboardHandler{store: s, cache: ca}
}

func (h *DashboardHandler) cacheGet(r *http.Request, key string, dest interface{}) bool {
	if h.cache == nil {
		return false
	}
	if h.cache.Get(r.Context(), key, dest) {
		dashboardCacheHits.WithLabelValues("hit").Inc()
		return true
	}
	dashboardCacheHits.WithLabelValues("miss").Inc()
	return false
}

func (h *DashboardHandler) cacheSet(r *http.Request, key string, value interface{}) {
	if h.cache != nil {
		h.cache.Set(r.Context(), key, value)
	}
}

func (h *DashboardHandler) Totals(w http.ResponseWriter, r *http.Request) {
	const key = "dashboard:totals"
	var cached store.DashboardTotals
	if h.cacheGet(r, key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	totals, err := h.store.Totals(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.cacheSet(r, key, totals)
	writeJSON(w, http.StatusOK, totals)
}

func (h *DashboardHandler) StudentsByAcademicYear(w http.ResponseWriter, r *http.Request) {
	const key = "dashboard:students:by-academic-year"
	var cached []engine.YearCount
	if h.cacheGet(r, key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	students, err := h.store.ListStudents(r.Context(), store.StudentFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := engine.CountByAcademicYear(students)
	h.cacheSet(r, key, out)
	writeJSON(w, http.StatusOK, out)
}

func (h *DashboardHandler) StudentsByGrade(w http.ResponseWriter, r *http.Request) {
	const key = "dashboard:students:by-grade"
	var cached []engine.GradeCount
	if h.cacheGet(r, key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	students, err := h.store.ListStudents(r.Context(), store.StudentFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := engine.CountByGrade(students)
	h.cacheSet(r, key, out)
	writeJSON(w, http.StatusOK, out)
}

func (h *DashboardHandler) StudentsByGender(w http.ResponseWriter, r *http.Request) {
	const key = "dashboard:students:by-gender"
	var cached engine.GenderCount
	if h.cacheGet(r, key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	students, err := h.store.ListStudents(r.Context(), store.StudentFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := engine.CountByGender(students)
	h.cacheSet(r, key, out)
	writeJSON(w, http.StatusOK, out)
}

func (h *DashboardHandler) KidsClubByCenter(w http.ResponseWriter, r *http.Request) {
	const key = "dashboard:students:kids-club-by-center"
	var cached []engine.CenterCount
	if h.cacheGet(r, key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	kidsClub := true
	students, err := h.store.ListStudents(r.Context(), store.StudentFilter{KidsClub: &kidsClub})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out, err := engine.CountKidsClubByCenter(r.Context(), students, h.store)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.cacheSet(r, key, out)
	writeJSON(w, http.StatusOK, out)
}

// GradeDistribution answers one (session, tier) rollup. The old dashboard
// had a hand-written endpoint per band and sitting; those are all this
// one query now.
func (h *DashboardHandler) GradeDistribution(w http.ResponseWriter, r *http.Request) {
	session := r.URL.Query().Get("session")
	if session == "" {
		writeError(w, http.StatusBadRequest, "session required")
		return
	}
	tier := engine.ParseTier(r.URL.Query().Get("tier"))
	if tier == engine.TierUnknown {
		writeError(w, http.StatusBadRequest, engine.ErrUnknownTier.Error())
		return
	}

	key := "dashboard:grade-distribution:" + session + ":" + tier.String()
	var cached map[string]int
	if h.cacheGet(r, key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	records, err := h.store.ListExamRecords(r.Context(), store.ExamRecordFilter{Session: session})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	counts, err := engine.GradeDistribution(records, session, tier)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.cacheSet(r, key, counts)
	writeJSON(w, http.StatusOK, counts)
}
