package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const examColumns = `e.id, e.student_id, e.session, e.scores,
	e.total_marks, e.average_mark, e.average_grade,
	s.code, s.name, s.grade, s.academic_year, lc.name,
	e.created_at`

const examFrom = ` FROM exam_records e
	JOIN students s ON s.id = e.student_id
	JOIN learning_centers lc ON lc.id = s.center_id`

func (s *PostgresStore) CreateExamRecord(ctx context.Context, r *ExamRecord) error {
	scoresJSON, err := json.Marshal(r.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO exam_records (student_id, session, scores, total_marks, average_mark, average_grade)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		r.StudentID, r.Session, scoresJSON, r.TotalMarks, r.AverageMark, r.AverageGrade,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *PostgresStore) GetExamRecord(ctx context.Context, id uuid.UUID) (*ExamRecord, error) {
	r := &ExamRecord{}
	var scoresJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT `+examColumns+examFrom+` WHERE e.id = $1`, id,
	).Scan(
		&r.ID, &r.StudentID, &r.Session, &scoresJSON,
		&r.TotalMarks, &r.AverageMark, &r.AverageGrade,
		&r.StudentCode, &r.StudentName, &r.Grade, &r.AcademicYear, &r.CenterName,
		&r.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if scoresJSON != nil {
		_ = json.Unmarshal(scoresJSON, &r.Scores)
	}
	return r, nil
}

func (s *PostgresStore) ListExamRecords(ctx context.Context, filter ExamRecordFilter) ([]*ExamRecord, error) {
	query := `SELECT ` + examColumns + examFrom + ` WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.CenterID != nil {
		n++
		query += fmt.Sprintf(" AND s.center_id = $%d", n)
		args = append(args, *filter.CenterID)
	}
	if filter.StudentID != nil {
		n++
		query += fmt.Sprintf(" AND e.student_id = $%d", n)
		args = append(args, *filter.StudentID)
	}
	if filter.Session != "" {
		n++
		query += fmt.Sprintf(" AND e.session = $%d", n)
		args = append(args, filter.Session)
	}

	query += " ORDER BY s.code ASC, e.session ASC"

	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*ExamRecord
	for rows.Next() {
		r := &ExamRecord{}
		var scoresJSON []byte
		if err := rows.Scan(
			&r.ID, &r.StudentID, &r.Session, &scoresJSON,
			&r.TotalMarks, &r.AverageMark, &r.AverageGrade,
			&r.StudentCode, &r.StudentName, &r.Grade, &r.AcademicYear, &r.CenterName,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		if scoresJSON != nil {
			_ = json.Unmarshal(scoresJSON, &r.Scores)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *PostgresStore) DeleteExamRecord(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM exam_records WHERE id = $1`, id)
	return err
}
