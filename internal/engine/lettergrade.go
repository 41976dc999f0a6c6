package engine

// GradeNA is the letter recorded when no tier can be resolved for the
// student's enrollment grade. It is the explicit default state and is
// never silently upgraded to a band letter.
const GradeNA = "N/A"

// LetterGrade applies the tier's threshold table to the composite average.
// The bands are asymmetric on purpose: the lower primary scale has no B/C
// and the upper scale has no S. That is the given business rule.
func LetterGrade(tier Tier, averageMark float64) string {
	switch tier {
	case TierLower:
		switch {
		case averageMark >= 80:
			return "A"
		case averageMark >= 40:
			return "E"
		default:
			return "S"
		}
	case TierUpper:
		switch {
		case averageMark >= 80:
			return "A"
		case averageMark >= 60:
			return "B"
		case averageMark >= 40:
			return "C"
		default:
			return "D"
		}
	default:
		return GradeNA
	}
}
