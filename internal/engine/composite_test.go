package engine

import (
	"math"
	"testing"
)

func TestCompositeAllSevenSubjects(t *testing.T) {
	scores := []SubjectScore{
		{Subject: SubjectMyanmar, Mark: 80},
		{Subject: SubjectEnglish, Mark: 70},
		{Subject: SubjectMaths, Mark: 90},
		{Subject: SubjectScience, Mark: 60},
		{Subject: SubjectSociety, Mark: 50},
		{Subject: SubjectGeography, Mark: 40},
		{Subject: SubjectHistory, Mark: 30},
	}
	total, avg := Composite(scores)
	if total != 420 {
		t.Errorf("expected total 420, got %d", total)
	}
	if avg != 60 {
		t.Errorf("expected average 60, got %v", avg)
	}
}

func TestCompositeRoundsToTwoDecimals(t *testing.T) {
	scores := []SubjectScore{
		{Subject: SubjectMyanmar, Mark: 85},
		{Subject: SubjectEnglish, Mark: 70},
		{Subject: SubjectMaths, Mark: 92},
	}
	// 247 / 3 = 82.333...
	total, avg := Composite(scores)
	if total != 247 {
		t.Errorf("expected total 247, got %d", total)
	}
	if math.Abs(avg-82.33) > 1e-9 {
		t.Errorf("expected average 82.33 exactly, got %v", avg)
	}
}

func TestCompositeIgnoresAdministrativeSubjects(t *testing.T) {
	scores := []SubjectScore{
		{Subject: SubjectMyanmar, Mark: 80},
		{Subject: SubjectAttendance, Mark: 100},
		{Subject: SubjectPSS, Mark: 100},
		{Subject: SubjectKidsClub, Mark: 100},
	}
	total, avg := Composite(scores)
	if total != 80 {
		t.Errorf("administrative marks must not count, got total %d", total)
	}
	if avg != 80 {
		t.Errorf("expected average 80 over the single counted subject, got %v", avg)
	}
}

func TestCompositeNoEligibleSubjects(t *testing.T) {
	scores := []SubjectScore{
		{Subject: SubjectAttendance, Mark: 95},
	}
	total, avg := Composite(scores)
	if total != 0 {
		t.Errorf("expected total 0, got %d", total)
	}
	if avg != 0 {
		t.Errorf("expected average 0 exactly when nothing counts, got %v", avg)
	}
}

func TestCompositeEmpty(t *testing.T) {
	total, avg := Composite(nil)
	if total != 0 || avg != 0 {
		t.Errorf("expected zeros for empty input, got %d / %v", total, avg)
	}
}

func TestCompositePartialSubset(t *testing.T) {
	// The average divides by subjects actually submitted, not by seven.
	tests := []struct {
		name  string
		marks []int
		avg   float64
	}{
		{"single", []int{73}, 73},
		{"pair", []int{73, 74}, 73.5},
		{"triple repeating", []int{1, 1, 2}, 1.33},
	}
	eligible := []Subject{SubjectMyanmar, SubjectEnglish, SubjectMaths}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var scores []SubjectScore
			for i, m := range tt.marks {
				scores = append(scores, SubjectScore{Subject: eligible[i], Mark: m})
			}
			_, avg := Composite(scores)
			if math.Abs(avg-tt.avg) > 1e-9 {
				t.Errorf("expected average %v, got %v", tt.avg, avg)
			}
		})
	}
}
