package match

import (
	"strings"

	"github.com/sells-group/leadgen-crm/internal/model"
)

// FilterCandidates applies strict pass/fail constraints to a candidate pool
// before scoring. Constraints are ANDed: a candidate survives only if every
// present field of hard matches. Absent fields impose no constraint, so a
// zero-valued Criteria returns the pool unchanged. The result is an
// order-preserving subsequence of the input.
func FilterCandidates(candidates []model.Candidate, hard Criteria) []model.Candidate {
	if hard.Industry == "" && hard.Location == "" {
		return candidates
	}

	out := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if passesHardFilter(c, hard) {
			out = append(out, c)
		}
	}
	return out
}

func passesHardFilter(c model.Candidate, hard Criteria) bool {
	if hard.Industry != "" {
		industry := strings.ToLower(c.Industry)
		ok := strings.Contains(industry, strings.ToLower(hard.Industry))
		if !ok {
			// A keyword hit in the candidate's industry also satisfies the
			// industry gate ("dental practices" should pass a "dental" filter
			// even though "dental" is not on the industry list).
			for _, kw := range hard.Keywords {
				if strings.Contains(industry, strings.ToLower(kw)) {
					ok = true
					break
				}
			}
		}
		if !ok {
			return false
		}
	}

	if hard.Location != "" && !strings.Contains(strings.ToLower(c.Location), strings.ToLower(hard.Location)) {
		return false
	}

	return true
}
