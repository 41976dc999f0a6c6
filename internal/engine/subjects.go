package engine

// Subject is the canonical code a free-text subject label resolves to.
type Subject string

const (
	SubjectMyanmar     Subject = "myanmar"
	SubjectEnglish     Subject = "english"
	SubjectMaths       Subject = "maths"
	SubjectScience     Subject = "science"
	SubjectSociety     Subject = "social"
	SubjectGeography   Subject = "geography"
	SubjectHistory     Subject = "history"
	SubjectChildRights Subject = "childrights"
	SubjectSRHR        Subject = "srhr"
	SubjectPSS         Subject = "pss"
	SubjectKidsClub    Subject = "kidsclub"
	SubjectAttendance  Subject = "attendance"
)

// subjectCatalog maps the labels teachers write on submission forms to
// canonical codes. Matching is exact and case-sensitive; a label outside
// this table is not an error, the entry is simply dropped.
var subjectCatalog = map[string]Subject{
	"Myanmar":         SubjectMyanmar,
	"English":         SubjectEnglish,
	"Mathematics":     SubjectMaths,
	"Science":         SubjectScience,
	"Society":         SubjectSociety,
	"Geography":       SubjectGeography,
	"History":         SubjectHistory,
	"Child Rights":    SubjectChildRights,
	"SRHR and Gender": SubjectSRHR,
	"PSS":             SubjectPSS,
	"Kid's Club":      SubjectKidsClub,
	"Attendance":      SubjectAttendance,
}

// totalEligible holds the seven academic subjects whose marks contribute
// to the composite total and average. Administrative subjects (PSS,
// attendance, club participation) are recorded but never counted.
var totalEligible = map[Subject]bool{
	SubjectMyanmar:   true,
	SubjectEnglish:   true,
	SubjectMaths:     true,
	SubjectScience:   true,
	SubjectSociety:   true,
	SubjectGeography: true,
	SubjectHistory:   true,
}

// ResolveSubject looks a submission label up in the catalog.
func ResolveSubject(label string) (Subject, bool) {
	code, ok := subjectCatalog[label]
	return code, ok
}

// CountsTowardTotal reports whether the subject's mark is included in
// the composite total and average.
func (s Subject) CountsTowardTotal() bool {
	return totalEligible[s]
}
