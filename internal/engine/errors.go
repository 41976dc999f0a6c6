package engine

// ValidationError is a failure the caller should surface to the client:
// the request referenced something that does not exist or omitted a
// required label. Everything else the engine absorbs into the output
// as zeroed marks, dropped subjects or the N/A grade.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrStudentNotFound ValidationError = "student not found"
	ErrEmptySession    ValidationError = "session is required"
	ErrUnknownTier     ValidationError = "unknown grade tier"
)
