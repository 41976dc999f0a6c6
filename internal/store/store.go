package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
	StudentDropout  StudentStatus = "dropout"
)

// LearningCenter is one community learning center in the network.
type LearningCenter struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Township string    `json:"township,omitempty"`
	Address  string    `json:"address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Student is one enrolled learner. Code is the human-assigned student ID
// written on paper forms; it is unique across the network.
type Student struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	AcademicYear string    `json:"academic_year"`
	Grade        string    `json:"grade"`
	Gender       string    `json:"gender"`
	Disability   bool      `json:"disability"`

	GuardianName string `json:"guardian_name,omitempty"`
	GuardianNRC  string `json:"guardian_nrc,omitempty"`

	// Household composition as reported at registration.
	FamilyMembers int `json:"family_members"`
	Over18Male    int `json:"over18_male"`
	Over18Female  int `json:"over18_female"`
	Under18Male   int `json:"under18_male"`
	Under18Female int `json:"under18_female"`

	Status         StudentStatus `json:"status"`
	AcademicReview string        `json:"academic_review,omitempty"`
	KidsClub       bool          `json:"kids_club"`
	Dropout        bool          `json:"dropout"`

	CenterID uuid.UUID `json:"center_id"`
	// Populated on reads that join the owning center.
	CenterName string `json:"center_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Teacher struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`

	CenterID   uuid.UUID `json:"center_id"`
	CenterName string    `json:"center_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AcademicYear struct {
	ID     uuid.UUID `json:"id"`
	Year   string    `json:"year"`
	Status string    `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubjectScore is the normalized per-subject outcome inside an exam record.
// Grade is the letter the submitting teacher wrote on the form, kept verbatim.
type SubjectScore struct {
	Mark  int    `json:"mark"`
	Grade string `json:"grade,omitempty"`
}

// ExamRecord is one graded exam sitting for one student. Scores is keyed by
// canonical subject code. TotalMarks, AverageMark and AverageGrade are always
// computed by the engine, never accepted from callers. Corrections are
// modeled as delete + recreate; graded fields are not mutated in place.
type ExamRecord struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Session   string    `json:"session"`

	Scores       map[string]SubjectScore `json:"scores"`
	TotalMarks   int                     `json:"total_marks"`
	AverageMark  float64                 `json:"average_mark"`
	AverageGrade string                  `json:"average_grade"`

	// Populated on reads that join the owning student, mirroring the
	// flattened listing shape the dashboard consumes.
	StudentCode  string `json:"student_code,omitempty"`
	StudentName  string `json:"student_name,omitempty"`
	Grade        string `json:"grade,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
	CenterName   string `json:"center_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type StudentFilter struct {
	CenterID     *uuid.UUID
	AcademicYear string
	Grade        string
	KidsClub     *bool
	Limit        int
	Offset       int
}

type ExamRecordFilter struct {
	CenterID  *uuid.UUID
	StudentID *uuid.UUID
	Session   string
	Limit     int
	Offset    int
}

// DashboardTotals is the headline counter row on the admin dashboard.
type DashboardTotals struct {
	Students int `json:"total_students"`
	Teachers int `json:"total_teachers"`
	Centers  int `json:"total_centers"`
}

type Store interface {
	// Learning centers
	CreateCenter(ctx context.Context, c *LearningCenter) error
	GetCenter(ctx context.Context, id uuid.UUID) (*LearningCenter, error)
	GetCenterByName(ctx context.Context, name string) (*LearningCenter, error)
	ListCenters(ctx context.Context) ([]*LearningCenter, error)
	UpdateCenter(ctx context.Context, c *LearningCenter) error
	DeleteCenter(ctx context.Context, id uuid.UUID) error

	// Students
	CreateStudent(ctx context.Context, s *Student) error
	GetStudent(ctx context.Context, id uuid.UUID) (*Student, error)
	GetStudentByCode(ctx context.Context, code string) (*Student, error)
	ListStudents(ctx context.Context, filter StudentFilter) ([]*Student, error)
	UpdateStudent(ctx context.Context, s *Student) error
	DeleteStudent(ctx context.Context, id uuid.UUID) error

	// Teachers
	CreateTeacher(ctx context.Context, t *Teacher) error
	GetTeacher(ctx context.Context, id uuid.UUID) (*Teacher, error)
	ListTeachers(ctx context.Context) ([]*Teacher, error)
	UpdateTeacher(ctx context.Context, t *Teacher) error
	DeleteTeacher(ctx context.Context, id uuid.UUID) error
	SetTeacherAvatar(ctx context.Context, id uuid.UUID, url string) error

	// Academic years
	ListAcademicYears(ctx context.Context) ([]*AcademicYear, error)
	UpdateAcademicYearStatus(ctx context.Context, id uuid.UUID, status string) (*AcademicYear, error)

	// Exam records
	CreateExamRecord(ctx context.Context, r *ExamRecord) error
	GetExamRecord(ctx context.Context, id uuid.UUID) (*ExamRecord, error)
	ListExamRecords(ctx context.Context, filter ExamRecordFilter) ([]*ExamRecord, error)
	DeleteExamRecord(ctx context.Context, id uuid.UUID) error

	Totals(ctx context.Context) (*DashboardTotals, error)

	Close() error
}
