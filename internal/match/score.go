package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/leadgen-crm/internal/model"
)

// Factor weights. Scoring is additive and independent: a factor only
// contributes when both sides carry data for it, and missing factors are
// never rescaled away.
const (
	industryWeight        = 40
	industryPartialCredit = 10
	locationWeight        = 25
	locationPartialCredit = 5
	sizeWeight            = 30
	keywordCap            = 5
)

// reasonSeparator joins the per-factor explanations into one reason string.
const reasonSeparator = " • "

// ScoreLead computes a 0-100 match score and a human-readable justification
// for one candidate against one criteria record. A pair with no evaluable
// factors scores 0 with an empty reason; that is a valid outcome, not an
// error.
func ScoreLead(cand model.Candidate, criteria Criteria) (int, string) {
	var score float64
	var reasons []string

	if criteria.Industry != "" && cand.Industry != "" {
		if strings.Contains(strings.ToLower(cand.Industry), strings.ToLower(criteria.Industry)) {
			score += industryWeight
			reasons = append(reasons, fmt.Sprintf("%s matches target industry", cand.Industry))
		} else {
			// Partial credit for having industry data at all.
			score += industryPartialCredit
			reasons = append(reasons, fmt.Sprintf("Different industry: %s", cand.Industry))
		}
	}

	if criteria.Location != "" && cand.Location != "" {
		if strings.Contains(strings.ToLower(cand.Location), strings.ToLower(criteria.Location)) {
			score += locationWeight
			reasons = append(reasons, fmt.Sprintf("Located in %s", cand.Location))
		} else {
			score += locationPartialCredit
			reasons = append(reasons, fmt.Sprintf("Different location: %s", cand.Location))
		}
	}

	if criteria.EmployeeRange != nil {
		if count, ok := ExtractEmployeeCount(cand.CompanySize); ok {
			min, max := criteria.EmployeeRange.Min, criteria.EmployeeRange.Max
			switch {
			case count >= min && count <= max:
				score += sizeWeight
				reasons = append(reasons, fmt.Sprintf("Perfect size fit: %d employees (target: %d-%d)", count, min, max))
			case count < min:
				score += proximityScore(min-count, max)
				reasons = append(reasons, fmt.Sprintf("Smaller than ideal: %d employees (target: %d-%d)", count, min, max))
			default:
				score += proximityScore(count-max, max)
				reasons = append(reasons, fmt.Sprintf("Larger than ideal: %d employees (target: %d-%d)", count, min, max))
			}
		}
	}

	if len(criteria.Keywords) > 0 {
		combined := strings.ToLower(cand.Company + " " + cand.Industry + " " + cand.Title)
		var matched []string
		for _, kw := range criteria.Keywords {
			if strings.Contains(combined, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			score += math.Min(keywordCap, float64(len(matched)*2))
			reasons = append(reasons, fmt.Sprintf("Relevant keywords: %s", strings.Join(matched, ", ")))
		}
	}

	return int(math.Round(math.Min(100, score))), strings.Join(reasons, reasonSeparator)
}

// proximityScore decays the size factor linearly with distance from the
// target band. The fractional value is added as-is; only the final sum is
// rounded.
func proximityScore(distance, max int) float64 {
	return math.Max(0, sizeWeight-(float64(distance)/float64(max))*20)
}
