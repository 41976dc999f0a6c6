package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yenaing-dev/schoolnet/internal/store"
)

func seedStudent(ms *mockStore, code, grade string) *store.Student {
	c := seedCenter(ms, "Center for "+code)
	st := &store.Student{Code: code, Name: "Student " + code, Grade: grade, CenterID: c.ID}
	ms.CreateStudent(context.Background(), st)
	return st
}

func submitExam(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/v1/exam-results", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitExamLowerTier(t *testing.T) {
	router, ms := setupTestRouter()
	seedStudent(ms, "STU-200", "G-2")

	body := `{
		"student_code": "STU-200",
		"session": "First Time",
		"results": [
			{"subject": "Myanmar", "mark": "90", "grading": "A"},
			{"subject": "English", "mark": 70, "grading": "B"},
			{"subject": "Attendance", "mark": "100"}
		]
	}`
	w := submitExam(router, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rec store.ExamRecord
	json.NewDecoder(w.Body).Decode(&rec)
	assert.Equal(t, 160, rec.TotalMarks)
	assert.Equal(t, 80.0, rec.AverageMark)
	assert.Equal(t, "A", rec.AverageGrade)
	assert.Len(t, rec.Scores, 3)
	assert.Len(t, ms.exams, 1)
}

func TestSubmitExamUpperTierGrading(t *testing.T) {
	router, ms := setupTestRouter()
	seedStudent(ms, "STU-201", "G-9")

	body := `{
		"student_code": "STU-201",
		"session": "First Time",
		"results": [
			{"subject": "Myanmar", "mark": "45"},
			{"subject": "English", "mark": "35"}
		]
	}`
	w := submitExam(router, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rec store.ExamRecord
	json.NewDecoder(w.Body).Decode(&rec)
	assert.Equal(t, 80, rec.TotalMarks)
	assert.Equal(t, 40.0, rec.AverageMark)
	assert.Equal(t, "C", rec.AverageGrade)
}

func TestSubmitExamUnknownStudent(t *testing.T) {
	router, _ := setupTestRouter()

	body := `{"student_code": "NOPE", "session": "First Time", "results": []}`
	w := submitExam(router, body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "student not found")
}

func TestSubmitExamEmptySession(t *testing.T) {
	router, ms := setupTestRouter()
	seedStudent(ms, "STU-202", "G-1")

	body := `{"student_code": "STU-202", "session": "", "results": []}`
	w := submitExam(router, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ms.exams)
}

func TestSubmitExamMalformedMarkStillRecorded(t *testing.T) {
	router, ms := setupTestRouter()
	seedStudent(ms, "STU-203", "G-3")

	body := `{
		"student_code": "STU-203",
		"session": "Second Time",
		"results": [
			{"subject": "Myanmar", "mark": "abc"},
			{"subject": "Astronomy", "mark": "99"},
			{"subject": "Science", "mark": null}
		]
	}`
	w := submitExam(router, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rec store.ExamRecord
	json.NewDecoder(w.Body).Decode(&rec)
	assert.Equal(t, 0, rec.TotalMarks)
	assert.Equal(t, "S", rec.AverageGrade)
	assert.Len(t, rec.Scores, 2, "the unrecognized subject must be dropped")
	assert.Len(t, ms.exams, 1)
}

func TestSubmitExamPublishesEvent(t *testing.T) {
	ms := newMockStore()
	ev := &mockEvents{}
	cfg := testConfig()
	router := NewRouter(ms, ev, nil, cfg, discardLogger())
	seedStudent(ms, "STU-204", "KG")

	body := `{"student_code": "STU-204", "session": "First Time", "results": [{"subject": "Myanmar", "mark": "50"}]}`
	w := submitExam(router, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if assert.Len(t, ev.published, 1) {
		assert.True(t, strings.HasPrefix(ev.published[0], "schoolnet.exam."))
		assert.True(t, strings.HasSuffix(ev.published[0], ".recorded"))
	}
}

func TestDeleteExamRecord(t *testing.T) {
	ms := newMockStore()
	ev := &mockEvents{}
	router := NewRouter(ms, ev, nil, testConfig(), discardLogger())
	st := seedStudent(ms, "STU-205", "G-5")

	rec := &store.ExamRecord{StudentID: st.ID, Session: "First Time"}
	ms.CreateExamRecord(context.Background(), rec)

	req := httptest.NewRequest("DELETE", "/api/v1/exam-results/"+rec.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, ms.exams)
	if assert.Len(t, ev.published, 1) {
		assert.True(t, strings.HasPrefix(ev.published[0], "schoolnet.exam."))
		assert.True(t, strings.HasSuffix(ev.published[0], ".deleted"))
	}
}

func TestGetExamRecordNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/api/v1/exam-results/00000000-0000-0000-0000-000000000001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
