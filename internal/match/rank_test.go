package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-crm/internal/model"
)

func TestRankLeads_DescendingOrder(t *testing.T) {
	pool := []model.Candidate{
		{Company: "Low", Industry: "Real Estate"},
		{Company: "High", Industry: "Digital Marketing"},
	}

	leads := RankLeads(pool, Criteria{Industry: "marketing"})

	require.Len(t, leads, 2)
	assert.Equal(t, "High", leads[0].Company)
	assert.Equal(t, 40, leads[0].MatchScore)
	assert.Equal(t, "Low", leads[1].Company)
	assert.Equal(t, 10, leads[1].MatchScore)
}

func TestRankLeads_TiesKeepInputOrder(t *testing.T) {
	pool := []model.Candidate{
		{Company: "Alpha", Industry: "Digital Marketing"},
		{Company: "Beta", Industry: "Performance Marketing"},
		{Company: "Gamma", Industry: "Real Estate"},
	}

	leads := RankLeads(pool, Criteria{Industry: "marketing"})

	require.Len(t, leads, 3)
	assert.Equal(t, leads[0].MatchScore, leads[1].MatchScore)
	assert.Equal(t, "Alpha", leads[0].Company)
	assert.Equal(t, "Beta", leads[1].Company)
	assert.Equal(t, "Gamma", leads[2].Company)
}

func TestRankLeads_EmptyPool(t *testing.T) {
	leads := RankLeads(nil, Criteria{Industry: "marketing"})
	assert.Empty(t, leads)
}

func TestRank_PipelineAppliesHardFilterBeforeScoring(t *testing.T) {
	pool := []model.Candidate{
		{Company: "Austin Digital Solutions", Industry: "Digital Marketing", Location: "Austin, TX", CompanySize: "15-25 employees"},
		{Company: "Chicago Marketing Hub", Industry: "Digital Marketing", Location: "Chicago, IL", CompanySize: "25-35 employees"},
		{Company: "Chicago Family Dentistry", Industry: "Dental Practice", Location: "Chicago, IL", CompanySize: "8-12 employees"},
	}

	// Hard filter and ranking ICP are parsed independently: the gate keeps
	// Chicago companies while the ICP still scores for marketing fit.
	leads := Rank(pool, "marketing agencies with 10-50 employees", "companies in Chicago")

	require.Len(t, leads, 2)
	assert.Equal(t, "Chicago Marketing Hub", leads[0].Company)
	assert.Equal(t, "Chicago Family Dentistry", leads[1].Company)
	assert.Greater(t, leads[0].MatchScore, leads[1].MatchScore)
}

func TestRank_EmptyHardFilterIsIdentity(t *testing.T) {
	pool := []model.Candidate{
		{Company: "A", Industry: "Real Estate"},
		{Company: "B", Industry: "Digital Marketing"},
	}

	leads := Rank(pool, "marketing agencies", "")

	require.Len(t, leads, 2)
	assert.Equal(t, "B", leads[0].Company)
}
