package events

const (
	StreamName   = "SCHOOLNET_EVENTS"
	StreamMaxAge = "2160h" // 90 days, one school term
)

func SubjectExamRecorded(recordID string) string { return "schoolnet.exam." + recordID + ".recorded" }
func SubjectExamDeleted(recordID string) string  { return "schoolnet.exam." + recordID + ".deleted" }

func SubjectStudentCreated(studentID string) string {
	return "schoolnet.student." + studentID + ".created"
}

// ExamRecordedEvent announces a freshly persisted exam record so report
// tooling can react without polling.
type ExamRecordedEvent struct {
	RecordID     string  `json:"record_id"`
	StudentCode  string  `json:"student_code"`
	Session      string  `json:"session"`
	TotalMarks   int     `json:"total_marks"`
	AverageMark  float64 `json:"average_mark"`
	AverageGrade string  `json:"average_grade"`
}

type ExamDeletedEvent struct {
	RecordID string `json:"record_id"`
}

type StudentCreatedEvent struct {
	StudentID string `json:"student_id"`
	Code      string `json:"code"`
	Center    string `json:"center"`
}
