package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-crm/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_CampaignRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	c, err := s.CreateCampaign(ctx, "dental practices in Chicago", "")
	require.NoError(t, err)
	require.NotZero(t, c.ID)

	got, err := s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "dental practices in Chicago", got.ICP)
	assert.Equal(t, model.CampaignStatusProcessing, got.Status)

	require.NoError(t, s.UpdateCampaignStatus(ctx, c.ID, model.CampaignStatusFailed))
	got, err = s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CampaignStatusFailed, got.Status)
}

func TestSQLiteStore_UpdateCampaignStatus_NotFound(t *testing.T) {
	s := newTestSQLite(t)

	err := s.UpdateCampaignStatus(context.Background(), 999, model.CampaignStatusCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campaign not found")
}

func TestSQLiteStore_LeadRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	c, err := s.CreateCampaign(ctx, "icp", "")
	require.NoError(t, err)

	lead, err := s.CreateLead(ctx, model.Lead{
		CampaignID:   c.ID,
		Name:         "Sarah Johnson",
		Title:        "Marketing Director",
		Company:      "Austin Digital Solutions",
		Email:        "sarah@austindigital.com",
		LinkedinURL:  "/in/sarah-johnson-marketing",
		Industry:     "Digital Marketing",
		Location:     "Austin, TX",
		CompanySize:  "15-25 employees",
		MatchScore:   95,
		MatchReason:  "Digital Marketing matches target industry",
		EmailSubject: "Quick question",
		EmailContent: "Hi Sarah,\n\nBody.\n\nBest",
	})
	require.NoError(t, err)
	require.NotZero(t, lead.ID)

	got, err := s.GetLead(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", got.Name)
	assert.Equal(t, 95, got.MatchScore)
	assert.Equal(t, model.LeadStatusReady, got.Status)
	assert.Nil(t, got.SentAt)
}

func TestSQLiteStore_CreateLeadsAndOrdering(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	c, err := s.CreateCampaign(ctx, "icp", "")
	require.NoError(t, err)

	created, err := s.CreateLeads(ctx, []model.Lead{
		{CampaignID: c.ID, Name: "Low", Title: "t", Company: "c", Email: "e", MatchScore: 40},
		{CampaignID: c.ID, Name: "High", Title: "t", Company: "c", Email: "e", MatchScore: 95},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	leads, err := s.GetLeadsByCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "High", leads[0].Name)
	assert.Equal(t, "Low", leads[1].Name)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.LeadsGenerated)
}

func TestSQLiteStore_UpdateLead(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	c, err := s.CreateCampaign(ctx, "icp", "")
	require.NoError(t, err)
	lead, err := s.CreateLead(ctx, model.Lead{CampaignID: c.ID, Name: "n", Title: "t", Company: "c", Email: "e"})
	require.NoError(t, err)

	starred := true
	subject := "New subject"
	updated, err := s.UpdateLead(ctx, lead.ID, LeadUpdate{Starred: &starred, EmailSubject: &subject})
	require.NoError(t, err)
	assert.True(t, updated.Starred)
	assert.Equal(t, "New subject", updated.EmailSubject)
	assert.Equal(t, "n", updated.Name)
}

func TestSQLiteStore_SendFlow(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	c, err := s.CreateCampaign(ctx, "icp", "")
	require.NoError(t, err)
	lead, err := s.CreateLead(ctx, model.Lead{CampaignID: c.ID, Name: "n", Title: "t", Company: "c", Email: "e"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateLeadStatus(ctx, lead.ID, model.LeadStatusSent))
	require.NoError(t, s.IncrementMessagesSent(ctx))

	got, err := s.GetLead(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusSent, got.Status)
	require.NotNil(t, got.SentAt)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MessagesSent)
}

func TestSQLiteStore_MigrateIdempotent(t *testing.T) {
	s := newTestSQLite(t)

	require.NoError(t, s.Migrate(context.Background()))
}
