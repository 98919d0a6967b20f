package match

import (
	"sort"

	"github.com/sells-group/leadgen-crm/internal/model"
)

// RankLeads scores every candidate against the criteria and returns them in
// strictly descending score order. The sort is stable: candidates with equal
// scores keep the relative order the prior stage produced.
func RankLeads(candidates []model.Candidate, criteria Criteria) []model.ScoredLead {
	leads := make([]model.ScoredLead, 0, len(candidates))
	for _, c := range candidates {
		score, reason := ScoreLead(c, criteria)
		leads = append(leads, model.ScoredLead{
			Candidate:   c,
			MatchScore:  score,
			MatchReason: reason,
		})
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].MatchScore > leads[j].MatchScore
	})

	return leads
}

// Rank is the full pipeline: parse the ICP and the optional hard-filter text
// into two independent criteria records, narrow the pool with the hard
// filter, then score and rank the survivors against the ICP criteria.
func Rank(candidates []model.Candidate, icp, hardFilter string) []model.ScoredLead {
	if hardFilter != "" {
		candidates = FilterCandidates(candidates, ParseICP(hardFilter))
	}
	return RankLeads(candidates, ParseICP(icp))
}
