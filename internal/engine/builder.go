package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/yenaing-dev/schoolnet/internal/store"
)

// StudentLookup resolves the student a submission belongs to. Satisfied by
// *store.PostgresStore.
type StudentLookup interface {
	GetStudentByCode(ctx context.Context, code string) (*store.Student, error)
}

// Builder turns a raw exam submission into one exam record. It holds no
// state between calls and is safe for concurrent use; persistence of the
// returned record is the caller's responsibility.
type Builder struct {
	students StudentLookup
}

func NewBuilder(students StudentLookup) *Builder {
	return &Builder{students: students}
}

// Build constructs the exam record for one submission. It fails only when
// the student cannot be resolved or the session label is empty; per-field
// anomalies in the submitted results are absorbed by normalization. The
// record's identity is left unset, the store assigns it on save.
func (b *Builder) Build(ctx context.Context, studentCode, session string, subs []SubjectSubmission) (*store.ExamRecord, error) {
	if strings.TrimSpace(session) == "" {
		return nil, ErrEmptySession
	}

	st, err := b.students.GetStudentByCode(ctx, studentCode)
	if err != nil {
		return nil, fmt.Errorf("lookup student %q: %w", studentCode, err)
	}
	if st == nil {
		return nil, ErrStudentNotFound
	}

	scores := Normalize(subs)
	total, avg := Composite(scores)
	letter := LetterGrade(ClassifyGrade(st.Grade), avg)

	rec := &store.ExamRecord{
		StudentID:    st.ID,
		Session:      session,
		Scores:       make(map[string]store.SubjectScore, len(scores)),
		TotalMarks:   total,
		AverageMark:  avg,
		AverageGrade: letter,
	}
	for _, sc := range scores {
		rec.Scores[string(sc.Subject)] = store.SubjectScore{Mark: sc.Mark, Grade: sc.Grade}
	}
	return rec, nil
}
