package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadgen-crm/internal/model"
)

func TestScoreLead_PerfectMatch(t *testing.T) {
	cand := model.Candidate{
		Company:     "Austin Digital Solutions",
		Industry:    "Digital Marketing Agency",
		Location:    "Austin, TX",
		CompanySize: "18 employees",
	}
	criteria := Criteria{
		Industry:      "marketing",
		Location:      "austin",
		EmployeeRange: &EmployeeRange{Min: 10, Max: 50},
	}

	score, reason := ScoreLead(cand, criteria)

	assert.Equal(t, 95, score)
	assert.Contains(t, reason, "matches target industry")
	assert.Contains(t, reason, "Located in Austin, TX")
	assert.Contains(t, reason, "Perfect size fit: 18 employees (target: 10-50)")
}

func TestScoreLead_KeywordCredit(t *testing.T) {
	cand := model.Candidate{
		Company:  "Growth Labs Marketing",
		Industry: "Growth Marketing",
		Title:    "Founder & CEO",
	}

	t.Run("two points per match", func(t *testing.T) {
		score, reason := ScoreLead(cand, Criteria{Keywords: []string{"growth"}})
		assert.Equal(t, 2, score)
		assert.Contains(t, reason, "Relevant keywords: growth")
	})

	t.Run("capped at five", func(t *testing.T) {
		score, _ := ScoreLead(cand, Criteria{Keywords: []string{"growth", "labs", "marketing", "founder"}})
		assert.Equal(t, 5, score)
	})

	t.Run("no matches adds nothing", func(t *testing.T) {
		score, reason := ScoreLead(cand, Criteria{Keywords: []string{"dental"}})
		assert.Equal(t, 0, score)
		assert.Empty(t, reason)
	})
}

func TestScoreLead_PartialCredits(t *testing.T) {
	criteria := Criteria{Industry: "marketing", Location: "austin"}
	cand := model.Candidate{
		Industry: "Real Estate",
		Location: "Chicago, IL",
	}

	score, reason := ScoreLead(cand, criteria)

	assert.Equal(t, 15, score)
	assert.Equal(t, "Different industry: Real Estate • Different location: Chicago, IL", reason)
}

func TestScoreLead_SizeProximity(t *testing.T) {
	tests := []struct {
		name       string
		size       string
		rng        EmployeeRange
		want       int
		wantReason string
	}{
		{"at min is a fit", "10 employees", EmployeeRange{10, 50}, 30, "Perfect size fit"},
		{"at max is a fit", "50 employees", EmployeeRange{10, 50}, 30, "Perfect size fit"},
		{"one below min", "9 employees", EmployeeRange{10, 20}, 29, "Smaller than ideal: 9 employees (target: 10-20)"},
		{"one above max", "21 employees", EmployeeRange{10, 20}, 29, "Larger than ideal: 21 employees (target: 10-20)"},
		{"far above max", "60 employees", EmployeeRange{10, 50}, 26, "Larger than ideal"},
		{"decay floors at zero", "500 employees", EmployeeRange{5, 10}, 0, "Larger than ideal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := model.Candidate{CompanySize: tt.size}
			criteria := Criteria{EmployeeRange: &tt.rng}

			score, reason := ScoreLead(cand, criteria)

			assert.Equal(t, tt.want, score)
			assert.Contains(t, reason, tt.wantReason)
		})
	}
}

func TestScoreLead_UnparseableSizeSkipsFactor(t *testing.T) {
	cand := model.Candidate{CompanySize: "unknown"}
	criteria := Criteria{EmployeeRange: &EmployeeRange{Min: 10, Max: 50}}

	score, reason := ScoreLead(cand, criteria)

	assert.Equal(t, 0, score)
	assert.Empty(t, reason)
}

func TestScoreLead_NoEvaluableFactors(t *testing.T) {
	score, reason := ScoreLead(model.Candidate{}, Criteria{})

	assert.Equal(t, 0, score)
	assert.Empty(t, reason)
}

func TestScoreLead_FactorsOnlyCountWhenBothSidesPresent(t *testing.T) {
	// Criteria wants an industry but the candidate has none recorded: the
	// factor is skipped entirely, not penalized.
	score, reason := ScoreLead(model.Candidate{Location: "Austin, TX"}, Criteria{Industry: "marketing"})
	assert.Equal(t, 0, score)
	assert.Empty(t, reason)
}

func TestScoreLead_BoundsAndPurity(t *testing.T) {
	cands := []model.Candidate{
		{},
		{Industry: "Digital Marketing", Location: "Austin, TX", CompanySize: "15-25 employees", Company: "Acme", Title: "CEO"},
		{Industry: "Dental Practice", Location: "Chicago, IL", CompanySize: "9000 employees"},
	}
	crits := []Criteria{
		{},
		{Industry: "marketing", Location: "austin", EmployeeRange: &EmployeeRange{10, 50}, Keywords: []string{"acme", "digital", "dental"}},
		{Industry: "legal", EmployeeRange: &EmployeeRange{1, 2}},
	}

	for _, cand := range cands {
		for _, criteria := range crits {
			s1, r1 := ScoreLead(cand, criteria)
			s2, r2 := ScoreLead(cand, criteria)

			assert.GreaterOrEqual(t, s1, 0)
			assert.LessOrEqual(t, s1, 100)
			assert.Equal(t, s1, s2)
			assert.Equal(t, r1, r2)
		}
	}
}

func TestScoreLead_ReasonOrderFixed(t *testing.T) {
	cand := model.Candidate{
		Company:     "Stellar Creative Agency",
		Industry:    "Creative Marketing",
		Title:       "VP of Marketing",
		Location:    "Austin, TX",
		CompanySize: "20-30 employees",
	}
	criteria := Criteria{
		Industry:      "marketing",
		Location:      "austin",
		EmployeeRange: &EmployeeRange{Min: 10, Max: 50},
		Keywords:      []string{"creative"},
	}

	score, reason := ScoreLead(cand, criteria)

	assert.Equal(t, 97, score)
	assert.Equal(t,
		"Creative Marketing matches target industry • Located in Austin, TX • Perfect size fit: 25 employees (target: 10-50) • Relevant keywords: creative",
		reason)
}
