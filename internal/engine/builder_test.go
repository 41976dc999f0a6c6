package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/yenaing-dev/schoolnet/internal/store"
)

type fakeStudents struct {
	students map[string]*store.Student
	lookups  int
}

func (f *fakeStudents) GetStudentByCode(_ context.Context, code string) (*store.Student, error) {
	f.lookups++
	return f.students[code], nil
}

func newFakeStudents(students ...*store.Student) *fakeStudents {
	f := &fakeStudents{students: make(map[string]*store.Student)}
	for _, st := range students {
		f.students[st.Code] = st
	}
	return f
}

func lowerStudent() *store.Student {
	return &store.Student{ID: uuid.New(), Code: "STU-001", Name: "Mya Mya", Grade: "G-2"}
}

func TestBuildHappyPath(t *testing.T) {
	st := lowerStudent()
	b := NewBuilder(newFakeStudents(st))

	rec, err := b.Build(context.Background(), "STU-001", "First Time", []SubjectSubmission{
		{Subject: "Myanmar", Mark: "90", Grading: "A"},
		{Subject: "English", Mark: "70", Grading: "B"},
		{Subject: "Attendance", Mark: "100"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if rec.StudentID != st.ID {
		t.Errorf("expected student ID %s, got %s", st.ID, rec.StudentID)
	}
	if rec.Session != "First Time" {
		t.Errorf("unexpected session %q", rec.Session)
	}
	if rec.TotalMarks != 160 {
		t.Errorf("expected total 160, got %d", rec.TotalMarks)
	}
	if rec.AverageMark != 80 {
		t.Errorf("expected average 80, got %v", rec.AverageMark)
	}
	if rec.AverageGrade != "A" {
		t.Errorf("expected grade A at the lower boundary, got %q", rec.AverageGrade)
	}
	if len(rec.Scores) != 3 {
		t.Errorf("expected 3 canonical scores, got %d", len(rec.Scores))
	}
	if rec.Scores["attendance"].Mark != 100 {
		t.Errorf("expected attendance recorded, got %+v", rec.Scores["attendance"])
	}
	if rec.ID != uuid.Nil {
		t.Error("builder must not assign record identity")
	}
}

func TestBuildUnknownStudent(t *testing.T) {
	b := NewBuilder(newFakeStudents())
	_, err := b.Build(context.Background(), "NOPE", "First Time", nil)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Error("expected a ValidationError")
	}
}

func TestBuildEmptySession(t *testing.T) {
	b := NewBuilder(newFakeStudents(lowerStudent()))
	for _, session := range []string{"", "   "} {
		if _, err := b.Build(context.Background(), "STU-001", session, nil); !errors.Is(err, ErrEmptySession) {
			t.Errorf("session %q: expected ErrEmptySession, got %v", session, err)
		}
	}
}

func TestBuildUnknownGradeGetsNA(t *testing.T) {
	st := &store.Student{ID: uuid.New(), Code: "STU-002", Grade: "Adult Literacy"}
	b := NewBuilder(newFakeStudents(st))

	rec, err := b.Build(context.Background(), "STU-002", "First Time", []SubjectSubmission{
		{Subject: "Myanmar", Mark: "95"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if rec.AverageGrade != GradeNA {
		t.Errorf("unknown tier must yield %q regardless of mark, got %q", GradeNA, rec.AverageGrade)
	}
	if rec.AverageMark != 95 {
		t.Errorf("average still computed for unknown tier, got %v", rec.AverageMark)
	}
}

func TestBuildAbsorbsMalformedMarks(t *testing.T) {
	b := NewBuilder(newFakeStudents(lowerStudent()))
	rec, err := b.Build(context.Background(), "STU-001", "Second Time", []SubjectSubmission{
		{Subject: "Myanmar", Mark: "abc", Grading: "?"},
		{Subject: "Not A Subject", Mark: "50"},
	})
	if err != nil {
		t.Fatalf("anomalies must be absorbed, got %v", err)
	}
	if rec.Scores["myanmar"].Mark != 0 {
		t.Errorf("expected malformed mark stored as 0, got %d", rec.Scores["myanmar"].Mark)
	}
	if _, ok := rec.Scores["notasubject"]; ok {
		t.Error("unknown label must not appear in the record")
	}
	if len(rec.Scores) != 1 {
		t.Errorf("expected 1 canonical score, got %d", len(rec.Scores))
	}
}

func TestBuildDeterministic(t *testing.T) {
	subs := []SubjectSubmission{
		{Subject: "Myanmar", Mark: "85", Grading: "A"},
		{Subject: "English", Mark: "xyz", Grading: "E"},
		{Subject: "Mathematics", Mark: "91"},
		{Subject: "PSS", Mark: "5"},
	}
	b := NewBuilder(newFakeStudents(lowerStudent()))

	first, err := b.Build(context.Background(), "STU-001", "First Time", subs)
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	second, err := b.Build(context.Background(), "STU-001", "First Time", subs)
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical records across runs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
