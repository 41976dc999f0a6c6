package engine

// Tier groups enrollment grades into the two bands that select which
// letter-grade thresholds apply.
type Tier int

const (
	TierUnknown Tier = iota
	TierLower
	TierUpper
)

var tierNames = map[Tier]string{
	TierUnknown: "unknown",
	TierLower:   "lower",
	TierUpper:   "upper",
}

func (t Tier) String() string { return tierNames[t] }

// ParseTier maps the external tier labels used by dashboard queries.
func ParseTier(s string) Tier {
	switch s {
	case "lower":
		return TierLower
	case "upper":
		return TierUpper
	default:
		return TierUnknown
	}
}

var lowerGrades = []string{"KG", "G-1", "G-2", "G-3"}

var upperGrades = []string{"G-4", "G-5", "G-6", "G-7", "G-8", "G-9", "G-10", "G-11", "G-12"}

var gradeTiers = func() map[string]Tier {
	m := make(map[string]Tier, len(lowerGrades)+len(upperGrades))
	for _, g := range lowerGrades {
		m[g] = TierLower
	}
	for _, g := range upperGrades {
		m[g] = TierUpper
	}
	return m
}()

// ClassifyGrade resolves an enrollment grade to its tier. Anything outside
// the two fixed sets is TierUnknown; callers must treat that as "no letter
// grade can be assigned", never default to a band.
func ClassifyGrade(grade string) Tier {
	return gradeTiers[grade]
}

// Grades returns the enrollment grades belonging to the tier. The returned
// slice is shared; callers must not modify it.
func (t Tier) Grades() []string {
	switch t {
	case TierLower:
		return lowerGrades
	case TierUpper:
		return upperGrades
	default:
		return nil
	}
}

// Letters returns the letter grades the tier's threshold table can produce,
// best first.
func (t Tier) Letters() []string {
	switch t {
	case TierLower:
		return []string{"A", "E", "S"}
	case TierUpper:
		return []string{"A", "B", "C", "D"}
	default:
		return nil
	}
}
