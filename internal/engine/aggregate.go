package engine

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/yenaing-dev/schoolnet/internal/store"
)

// CenterLookup resolves learning-center display names for aggregation.
// Satisfied by *store.PostgresStore.
type CenterLookup interface {
	GetCenter(ctx context.Context, id uuid.UUID) (*store.LearningCenter, error)
}

type YearCount struct {
	AcademicYear string `json:"academic_year"`
	Count        int    `json:"count"`
}

type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

type CenterCount struct {
	Center string `json:"center"`
	Count  int    `json:"count"`
}

type GenderCount struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// CountByAcademicYear groups students by academic year, ascending.
func CountByAcademicYear(students []*store.Student) []YearCount {
	byYear := make(map[string]int)
	for _, st := range students {
		byYear[st.AcademicYear]++
	}
	out := make([]YearCount, 0, len(byYear))
	for year, n := range byYear {
		out = append(out, YearCount{AcademicYear: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AcademicYear < out[j].AcademicYear })
	return out
}

// gradeSortKey orders enrollment grades: KG first, then G-<n> numerically.
// ok is false for strings matching neither form.
func gradeSortKey(grade string) (key int, ok bool) {
	if grade == "KG" {
		return -1, true
	}
	if suffix, found := strings.CutPrefix(grade, "G-"); found {
		if n, err := strconv.Atoi(suffix); err == nil {
			return n, true
		}
	}
	return 0, false
}

// CountByGrade groups students by enrollment grade. KG sorts first, then
// G-<n> in numeric order. Grades matching neither form are never dropped;
// they sort after the conforming grades, lexicographically.
func CountByGrade(students []*store.Student) []GradeCount {
	byGrade := make(map[string]int)
	for _, st := range students {
		byGrade[st.Grade]++
	}
	out := make([]GradeCount, 0, len(byGrade))
	for grade, n := range byGrade {
		out = append(out, GradeCount{Grade: grade, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		ki, iok := gradeSortKey(out[i].Grade)
		kj, jok := gradeSortKey(out[j].Grade)
		if iok && jok {
			return ki < kj
		}
		if iok != jok {
			return iok
		}
		return out[i].Grade < out[j].Grade
	})
	return out
}

// CountKidsClubByCenter counts Kids-Club participants per learning center.
// Center names are resolved once per distinct center, not per student; a
// center that cannot be resolved reports as "Unknown".
func CountKidsClubByCenter(ctx context.Context, students []*store.Student, centers CenterLookup) ([]CenterCount, error) {
	byCenter := make(map[uuid.UUID]int)
	for _, st := range students {
		if st.KidsClub {
			byCenter[st.CenterID]++
		}
	}

	names := make(map[uuid.UUID]string, len(byCenter))
	for id := range byCenter {
		c, err := centers.GetCenter(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve center %s: %w", id, err)
		}
		if c == nil {
			names[id] = "Unknown"
		} else {
			names[id] = c.Name
		}
	}

	out := make([]CenterCount, 0, len(byCenter))
	for id, n := range byCenter {
		out = append(out, CenterCount{Center: names[id], Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Center < out[j].Center })
	return out, nil
}

// CountByGender counts male and female students. Genders outside the two
// tracked categories are neither counted nor reported; the dashboard has
// always worked this way and changing it is a product decision.
func CountByGender(students []*store.Student) GenderCount {
	var g GenderCount
	for _, st := range students {
		switch st.Gender {
		case "Male":
			g.Male++
		case "Female":
			g.Female++
		}
	}
	return g
}

// GradeDistribution counts exam records by letter grade, restricted to one
// session label and one grade tier. Every letter the tier can produce is
// present in the result, zero when unseen. This one parameterized rollup
// serves all four dashboard views (lower/upper band, first/second sitting).
func GradeDistribution(records []*store.ExamRecord, session string, tier Tier) (map[string]int, error) {
	if tier != TierLower && tier != TierUpper {
		return nil, ErrUnknownTier
	}

	counts := make(map[string]int, len(tier.Letters()))
	for _, letter := range tier.Letters() {
		counts[letter] = 0
	}
	for _, rec := range records {
		if rec.Session != session {
			continue
		}
		if ClassifyGrade(rec.Grade) != tier {
			continue
		}
		if _, tracked := counts[rec.AverageGrade]; tracked {
			counts[rec.AverageGrade]++
		}
	}
	return counts, nil
}
