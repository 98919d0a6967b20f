package store

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-crm/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_CreateCampaign(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`INSERT INTO campaigns`).
		WithArgs("marketing agencies in Austin", "Texas only", "processing", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	c, err := s.CreateCampaign(context.Background(), "marketing agencies in Austin", "Texas only")
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, model.CampaignStatusProcessing, c.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetCampaign_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, icp, hard_filter, status, created_at FROM campaigns WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetCampaign(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get campaign")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateCampaignStatus_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE campaigns SET status = \$1 WHERE id = \$2`).
		WithArgs("completed", int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateCampaignStatus(context.Background(), 5, model.CampaignStatusCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campaign not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateLead_BumpsStats(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	anyArgs := make([]any, 17)
	for i := range anyArgs {
		anyArgs[i] = pgxmock.AnyArg()
	}
	mock.ExpectQuery(`INSERT INTO leads`).
		WithArgs(anyArgs...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec(`UPDATE stats SET leads_generated = leads_generated \+ 1`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	lead, err := s.CreateLead(context.Background(), model.Lead{
		CampaignID: 1, Name: "Sarah Johnson", Title: "Marketing Director",
		Company: "Austin Digital Solutions", Email: "sarah@austindigital.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), lead.ID)
	assert.Equal(t, model.LeadStatusReady, lead.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateLeads_RejectsMixedCampaigns(t *testing.T) {
	s, _ := newMockPostgresStore(t)

	_, err := s.CreateLeads(context.Background(), []model.Lead{
		{CampaignID: 1, Name: "a", Title: "t", Company: "c", Email: "e"},
		{CampaignID: 2, Name: "b", Title: "t", Company: "c", Email: "e"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spans campaigns")
}

func TestPostgresStore_CreateLeads_EmptyIsNoop(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	leads, err := s.CreateLeads(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, leads)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateLeadStatus_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE leads SET status = \$1, sent_at = COALESCE\(\$2, sent_at\) WHERE id = \$3`).
		WithArgs("sent", pgxmock.AnyArg(), int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateLeadStatus(context.Background(), 42, model.LeadStatusSent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lead not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetStats(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, leads_generated, messages_sent, responses FROM stats WHERE id = 1`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "leads_generated", "messages_sent", "responses"}).
			AddRow(int64(1), 12, 4, 1))

	stats, err := s.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.LeadsGenerated)
	assert.Equal(t, 4, stats.MessagesSent)
	assert.Equal(t, 1, stats.Responses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_IncrementMessagesSent(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE stats SET messages_sent = messages_sent \+ 1`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.IncrementMessagesSent(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
