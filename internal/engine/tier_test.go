package engine

import "testing"

func TestClassifyGrade(t *testing.T) {
	tests := []struct {
		grade string
		want  Tier
	}{
		{"KG", TierLower},
		{"G-1", TierLower},
		{"G-3", TierLower},
		{"G-4", TierUpper},
		{"G-12", TierUpper},
		{"G-13", TierUnknown},
		{"Grade 5", TierUnknown},
		{"kg", TierUnknown},
		{"", TierUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyGrade(tt.grade); got != tt.want {
			t.Errorf("ClassifyGrade(%q) = %s, want %s", tt.grade, got, tt.want)
		}
	}
}

func TestParseTier(t *testing.T) {
	if ParseTier("lower") != TierLower {
		t.Error("expected lower")
	}
	if ParseTier("upper") != TierUpper {
		t.Error("expected upper")
	}
	if ParseTier("middle") != TierUnknown {
		t.Error("expected unknown for unrecognized label")
	}
	if ParseTier("") != TierUnknown {
		t.Error("expected unknown for empty label")
	}
}

func TestTierGrades(t *testing.T) {
	if n := len(TierLower.Grades()); n != 4 {
		t.Errorf("expected 4 lower grades, got %d", n)
	}
	if n := len(TierUpper.Grades()); n != 9 {
		t.Errorf("expected 9 upper grades, got %d", n)
	}
	if TierUnknown.Grades() != nil {
		t.Error("expected nil grades for unknown tier")
	}
}

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		mark float64
		want string
	}{
		{"lower A boundary", TierLower, 80, "A"},
		{"lower just below A", TierLower, 79, "E"},
		{"lower E boundary", TierLower, 40, "E"},
		{"lower below E", TierLower, 39, "S"},
		{"lower zero", TierLower, 0, "S"},
		{"upper A boundary", TierUpper, 80, "A"},
		{"upper B boundary", TierUpper, 60, "B"},
		{"upper C boundary", TierUpper, 40, "C"},
		{"upper below C", TierUpper, 39, "D"},
		{"upper high", TierUpper, 99.5, "A"},
		{"unknown high mark", TierUnknown, 95, GradeNA},
		{"unknown zero", TierUnknown, 0, GradeNA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LetterGrade(tt.tier, tt.mark); got != tt.want {
				t.Errorf("LetterGrade(%s, %v) = %q, want %q", tt.tier, tt.mark, got, tt.want)
			}
		})
	}
}
