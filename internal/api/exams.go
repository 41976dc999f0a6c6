package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yenaing-dev/schoolnet/internal/cache"
	"github.com/yenaing-dev/schoolnet/internal/engine"
	"github.com/yenaing-dev/schoolnet/internal/events"
	"github.com/yenaing-dev/schoolnet/internal/store"
)

type ExamsHandler struct {
	store   store.Store
	builder *engine.Builder
	events  events.Client
	cache   *cache.Cache
}

func NewExamsHandler(s store.Store, b *engine.Builder, ev events.Client, ca *cache.Cache) *ExamsHandler {
	return &ExamsHandler{store: s, builder: b, events: ev, cache: ca}
}

// flexString accepts a JSON string or number. Marks arrive both ways from
// the submission forms and occasionally as neither; parsing is the
// normalizer's job, the transport just carries the raw text.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

type SubjectResult struct {
	Subject string     `json:"subject"`
	Mark    flexString `json:"mark"`
	Grading string     `json:"grading,omitempty"`
}

type ExamSubmissionRequest struct {
	StudentCode string          `json:"student_code"`
	Session     string          `json:"session"`
	Results     []SubjectResult `json:"results"`
}

func (h *ExamsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ExamSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subs := make([]engine.SubjectSubmission, 0, len(req.Results))
	for _, res := range req.Results {
		subs = append(subs, engine.SubjectSubmission{
			Subject: res.Subject,
			Mark:    string(res.Mark),
			Grading: res.Grading,
		})
	}

	rec, err := h.builder.Build(r.Context(), req.StudentCode, req.Session, subs)
	if err != nil {
		var verr engine.ValidationError
		if errors.As(err, &verr) {
			examSubmissionsTotal.WithLabelValues("rejected").Inc()
			status := http.StatusBadRequest
			if errors.Is(err, engine.ErrStudentNotFound) {
				status = http.StatusNotFound
			}
			writeError(w, status, verr.Error())
			return
		}
		examSubmissionsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.store.CreateExamRecord(r.Context(), rec); err != nil {
		examSubmissionsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	examSubmissionsTotal.WithLabelValues("recorded").Inc()

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), "dashboard:*")
	}
	if h.events != nil {
		_ = h.events.Publish(events.SubjectExamRecorded(rec.ID.String()), events.ExamRecordedEvent{
			RecordID:     rec.ID.String(),
			StudentCode:  req.StudentCode,
			Session:      rec.Session,
			TotalMarks:   rec.TotalMarks,
			AverageMark:  rec.AverageMark,
			AverageGrade: rec.AverageGrade,
		})
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *ExamsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ExamRecordFilter{
		Session: r.URL.Query().Get("session"),
	}
	records, err := h.store.ListExamRecords(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []*store.ExamRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *ExamsHandler) ListByCenter(w http.ResponseWriter, r *http.Request) {
	centerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid center id")
		return
	}
	records, err := h.store.ListExamRecords(r.Context(), store.ExamRecordFilter{CenterID: &centerID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []*store.ExamRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *ExamsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exam record id")
		return
	}
	rec, err := h.store.GetExamRecord(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "exam record not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete removes a record outright. Grade corrections are delete + resubmit,
// never an in-place edit of computed fields.
func (h *ExamsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exam record id")
		return
	}
	if err := h.store.DeleteExamRecord(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), "dashboard:*")
	}
	if h.events != nil {
		_ = h.events.Publish(events.SubjectExamDeleted(id.String()), events.ExamDeletedEvent{
			RecordID: id.String(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
