package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// --- Learning centers ---

const centerColumns = `id, name, township, address, created_at, updated_at`

func (s *PostgresStore) CreateCenter(ctx context.Context, c *LearningCenter) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO learning_centers (name, township, address)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Township, c.Address,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (s *PostgresStore) GetCenter(ctx context.Context, id uuid.UUID) (*LearningCenter, error) {
	return s.scanCenterRow(s.pool.QueryRow(ctx, `
		SELECT `+centerColumns+` FROM learning_centers WHERE id = $1`, id))
}

func (s *PostgresStore) GetCenterByName(ctx context.Context, name string) (*LearningCenter, error) {
	return s.scanCenterRow(s.pool.QueryRow(ctx, `
		SELECT `+centerColumns+` FROM learning_centers WHERE name = $1`, name))
}

func (s *PostgresStore) scanCenterRow(row pgx.Row) (*LearningCenter, error) {
	c := &LearningCenter{}
	err := row.Scan(&c.ID, &c.Name, &c.Township, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PostgresStore) ListCenters(ctx context.Context) ([]*LearningCenter, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+centerColumns+` FROM learning_centers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var centers []*LearningCenter
	for rows.Next() {
		c := &LearningCenter{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Township, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		centers = append(centers, c)
	}
	return centers, rows.Err()
}

func (s *PostgresStore) UpdateCenter(ctx context.Context, c *LearningCenter) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE learning_centers SET name = $2, township = $3, address = $4, updated_at = now()
		WHERE id = $1`,
		c.ID, c.Name, c.Township, c.Address,
	)
	return err
}

func (s *PostgresStore) DeleteCenter(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM learning_centers WHERE id = $1`, id)
	return err
}

// --- Students ---

const studentColumns = `s.id, s.code, s.name, s.academic_year, s.grade, s.gender, s.disability,
	s.guardian_name, s.guardian_nrc,
	s.family_members, s.over18_male, s.over18_female, s.under18_male, s.under18_female,
	s.status, s.academic_review, s.kids_club, s.dropout,
	s.center_id, lc.name,
	s.created_at, s.updated_at`

const studentFrom = ` FROM students s JOIN learning_centers lc ON lc.id = s.center_id`

func (s *PostgresStore) CreateStudent(ctx context.Context, st *Student) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO students (code, name, academic_year, grade, gender, disability,
			guardian_name, guardian_nrc,
			family_members, over18_male, over18_female, under18_male, under18_female,
			status, academic_review, kids_club, dropout, center_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at, updated_at`,
		st.Code, st.Name, st.AcademicYear, st.Grade, st.Gender, st.Disability,
		st.GuardianName, st.GuardianNRC,
		st.FamilyMembers, st.Over18Male, st.Over18Female, st.Under18Male, st.Under18Female,
		st.Status, st.AcademicReview, st.KidsClub, st.Dropout, st.CenterID,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
}

func (s *PostgresStore) GetStudent(ctx context.Context, id uuid.UUID) (*Student, error) {
	return s.scanStudentRow(s.pool.QueryRow(ctx, `
		SELECT `+studentColumns+studentFrom+` WHERE s.id = $1`, id))
}

func (s *PostgresStore) GetStudentByCode(ctx context.Context, code string) (*Student, error) {
	return s.scanStudentRow(s.pool.QueryRow(ctx, `
		SELECT `+studentColumns+studentFrom+` WHERE s.code = $1`, code))
}

func (s *PostgresStore) scanStudentRow(row pgx.Row) (*Student, error) {
	st := &Student{}
	err := scanStudent(row, st)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

func scanStudent(row pgx.Row, st *Student) error {
	return row.Scan(
		&st.ID, &st.Code, &st.Name, &st.AcademicYear, &st.Grade, &st.Gender, &st.Disability,
		&st.GuardianName, &st.GuardianNRC,
		&st.FamilyMembers, &st.Over18Male, &st.Over18Female, &st.Under18Male, &st.Under18Female,
		&st.Status, &st.AcademicReview, &st.KidsClub, &st.Dropout,
		&st.CenterID, &st.CenterName,
		&st.CreatedAt, &st.UpdatedAt,
	)
}

func (s *PostgresStore) ListStudents(ctx context.Context, filter StudentFilter) ([]*Student, error) {
	query := `SELECT ` + studentColumns + studentFrom + ` WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.CenterID != nil {
		n++
		query += fmt.Sprintf(" AND s.center_id = $%d", n)
		args = append(args, *filter.CenterID)
	}
	if filter.AcademicYear != "" {
		n++
		query += fmt.Sprintf(" AND s.academic_year = $%d", n)
		args = append(args, filter.AcademicYear)
	}
	if filter.Grade != "" {
		n++
		query += fmt.Sprintf(" AND s.grade = $%d", n)
		args = append(args, filter.Grade)
	}
	if filter.KidsClub != nil {
		n++
		query += fmt.Sprintf(" AND s.kids_club = $%d", n)
		args = append(args, *filter.KidsClub)
	}

	query += " ORDER BY s.code ASC"

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

	var students []*Student
	for rows.Next() {
		st := &Student{}
		if err := scanStudent(rows, st); err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func (s *PostgresStore) UpdateStudent(ctx context.Context, st *Student) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE students SET
			code = $2, name = $3, academic_year = $4, grade = $5, gender = $6, disability = $7,
			guardian_name = $8, guardian_nrc = $9,
			family_members = $10, over18_male = $11, over18_female = $12,
			under18_male = $13, under18_female = $14,
			status = $15, academic_review = $16, kids_club = $17, dropout = $18,
			center_id = $19, updated_at = now()
		WHERE id = $1`,
		st.ID, st.Code, st.Name, st.AcademicYear, st.Grade, st.Gender, st.Disability,
		st.GuardianName, st.GuardianNRC,
		st.FamilyMembers, st.Over18Male, st.Over18Female, st.Under18Male, st.Under18Female,
		st.Status, st.AcademicReview, st.KidsClub, st.Dropout, st.CenterID,
	)
	return err
}

func (s *PostgresStore) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}

// --- Teachers ---

const teacherColumns = `t.id, t.code, t.name, t.gender, t.phone, t.avatar_url,
	t.center_id, lc.name, t.created_at, t.updated_at`

const teacherFrom = ` FROM teachers t JOIN learning_centers lc ON lc.id = t.center_id`

func (s *PostgresStore) CreateTeacher(ctx context.Context, t *Teacher) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO teachers (code, name, gender, phone, avatar_url, center_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		t.Code, t.Name, t.Gender, t.Phone, t.AvatarURL, t.CenterID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (s *PostgresStore) GetTeacher(ctx context.Context, id uuid.UUID) (*Teacher, error) {
	t := &Teacher{}
	err := s.pool.QueryRow(ctx, `
		SELECT `+teacherColumns+teacherFrom+` WHERE t.id = $1`, id,
	).Scan(&t.ID, &t.Code, &t.Name, &t.Gender, &t.Phone, &t.AvatarURL,
		&t.CenterID, &t.CenterName, &t.CreatedAt, &t.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PostgresStore) ListTeachers(ctx context.Context) ([]*Teacher, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+teacherColumns+teacherFrom+` ORDER BY t.code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*Teacher
	for rows.Next() {
		t := &Teacher{}
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Gender, &t.Phone, &t.AvatarURL,
			&t.CenterID, &t.CenterName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func (s *PostgresStore) UpdateTeacher(ctx context.Context, t *Teacher) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE teachers SET code = $2, name = $3, gender = $4, phone = $5,
			avatar_url = $6, center_id = $7, updated_at = now()
		WHERE id = $1`,
		t.ID, t.Code, t.Name, t.Gender, t.Phone, t.AvatarURL, t.CenterID,
	)
	return err
}

func (s *PostgresStore) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) SetTeacherAvatar(ctx context.Context, id uuid.UUID, url string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE teachers SET avatar_url = $2, updated_at = now() WHERE id = $1`, id, url)
	return err
}

// --- Academic years ---

func (s *PostgresStore) ListAcademicYears(ctx context.Context) ([]*AcademicYear, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, year, status, created_at, updated_at
		FROM academic_years ORDER BY year ASC LIMIT 20`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*AcademicYear
	for rows.Next() {
		y := &AcademicYear{}
		if err := rows.Scan(&y.ID, &y.Year, &y.Status, &y.CreatedAt, &y.UpdatedAt); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (s *PostgresStore) UpdateAcademicYearStatus(ctx context.Context, id uuid.UUID, status string) (*AcademicYear, error) {
	y := &AcademicYear{}
	err := s.pool.QueryRow(ctx, `
		UPDATE academic_years SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, year, status, created_at, updated_at`,
		id, status,
	).Scan(&y.ID, &y.Year, &y.Status, &y.CreatedAt, &y.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return y, nil
}

func (s *PostgresStore) Totals(ctx context.Context) (*DashboardTotals, error) {
	t := &DashboardTotals{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM teachers),
			(SELECT COUNT(*) FROM learning_centers)`,
	).Scan(&t.Students, &t.Teachers, &t.Centers)
	return t, err
}
