package engine

import "math"

// Composite sums the marks of total-eligible subjects and computes the
// average over the subjects actually submitted, rounded to 2 decimal
// places. A submission with no total-eligible subject yields average 0;
// that is a valid state, not an error.
func Composite(scores []SubjectScore) (totalMarks int, averageMark float64) {
	counted := 0
	for _, sc := range scores {
		if sc.Subject.CountsTowardTotal() {
			totalMarks += sc.Mark
			counted++
		}
	}
	if counted == 0 {
		return totalMarks, 0
	}
	averageMark = math.Round(float64(totalMarks)/float64(counted)*100) / 100
	return totalMarks, averageMark
}
