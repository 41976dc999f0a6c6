package engine

import (
	"strconv"
	"strings"
)

// SubjectSubmission is one reported subject result as it arrives from a
// teacher's form. Mark is raw text: the source data is transcribed from
// paper and is frequently blank or non-numeric.
type SubjectSubmission struct {
	Subject string `json:"subject"`
	Mark    string `json:"mark"`
	Grading string `json:"grading,omitempty"`
}

// SubjectScore is a normalized per-subject result keyed by canonical code.
type SubjectScore struct {
	Subject Subject
	Mark    int
	Grade   string
}

// Normalize resolves submission labels against the catalog and parses marks.
// Unknown labels are skipped. A mark that fails to parse becomes 0 rather
// than failing the submission; partial paper forms are the norm, not the
// exception. Grading letters are copied verbatim, unvalidated. If a subject
// appears more than once the later occurrence wins.
func Normalize(subs []SubjectSubmission) []SubjectScore {
	byCode := make(map[Subject]SubjectScore, len(subs))
	order := make([]Subject, 0, len(subs))

	for _, sub := range subs {
		code, ok := ResolveSubject(sub.Subject)
		if !ok {
			continue
		}
		mark, err := strconv.Atoi(strings.TrimSpace(sub.Mark))
		if err != nil {
			mark = 0
		}
		if _, seen := byCode[code]; !seen {
			order = append(order, code)
		}
		byCode[code] = SubjectScore{Subject: code, Mark: mark, Grade: sub.Grading}
	}

	scores := make([]SubjectScore, 0, len(order))
	for _, code := range order {
		scores = append(scores, byCode[code])
	}
	return scores
}
