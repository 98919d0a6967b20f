package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-crm/internal/db"
	"github.com/sells-group/leadgen-crm/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"insert_campaign":        `INSERT INTO campaigns (icp, hard_filter, status, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
	"get_campaign":           `SELECT id, icp, hard_filter, status, created_at FROM campaigns WHERE id = $1`,
	"update_campaign_status": `UPDATE campaigns SET status = $1 WHERE id = $2`,
	"get_lead":               `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`,
	"update_lead_status":     `UPDATE leads SET status = $1, sent_at = COALESCE($2, sent_at) WHERE id = $3`,
	"get_stats":              `SELECT id, leads_generated, messages_sent, responses FROM stats WHERE id = 1`,
	"increment_messages":     `UPDATE stats SET messages_sent = messages_sent + 1 WHERE id = 1`,
}

const leadColumns = `id, campaign_id, name, title, company, email, linkedin_url, avatar, industry, location, company_size, match_score, match_reason, email_subject, email_content, starred, notes, status, sent_at`

// leadInsertColumns is the COPY column list, aligned with leadRow.
var leadInsertColumns = []string{
	"campaign_id", "name", "title", "company", "email", "linkedin_url",
	"avatar", "industry", "location", "company_size", "match_score",
	"match_reason", "email_subject", "email_content", "starred", "notes",
	"status",
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// Pool returns the underlying database pool for subsystems that need direct
// query access.
func (s *PostgresStore) Pool() db.Pool {
	return s.pool
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS campaigns (
	id          BIGSERIAL PRIMARY KEY,
	icp         TEXT NOT NULL,
	hard_filter TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'processing',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS leads (
	id            BIGSERIAL PRIMARY KEY,
	campaign_id   BIGINT NOT NULL REFERENCES campaigns(id),
	name          TEXT NOT NULL,
	title         TEXT NOT NULL,
	company       TEXT NOT NULL,
	email         TEXT NOT NULL,
	linkedin_url  TEXT NOT NULL DEFAULT '',
	avatar        TEXT NOT NULL DEFAULT '',
	industry      TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	company_size  TEXT NOT NULL DEFAULT '',
	match_score   INTEGER NOT NULL DEFAULT 0,
	match_reason  TEXT NOT NULL DEFAULT '',
	email_subject TEXT NOT NULL DEFAULT '',
	email_content TEXT NOT NULL DEFAULT '',
	starred       BOOLEAN NOT NULL DEFAULT false,
	notes         TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL DEFAULT 'ready',
	sent_at       TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_leads_campaign_id ON leads(campaign_id);
CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
CREATE INDEX IF NOT EXISTS idx_campaigns_status ON campaigns(status);

CREATE TABLE IF NOT EXISTS stats (
	id              BIGINT PRIMARY KEY,
	leads_generated INTEGER NOT NULL DEFAULT 0,
	messages_sent   INTEGER NOT NULL DEFAULT 0,
	responses       INTEGER NOT NULL DEFAULT 0
);

INSERT INTO stats (id, leads_generated, messages_sent, responses)
VALUES (1, 0, 0, 0)
ON CONFLICT (id) DO NOTHING;
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) CreateCampaign(ctx context.Context, icp, hardFilter string) (*model.Campaign, error) {
	now := time.Now().UTC()

	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO campaigns (icp, hard_filter, status, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		icp, hardFilter, string(model.CampaignStatusProcessing), now,
	).Scan(&id)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert campaign")
	}

	return &model.Campaign{
		ID:         id,
		ICP:        icp,
		HardFilter: hardFilter,
		Status:     model.CampaignStatusProcessing,
		CreatedAt:  now,
	}, nil
}

func (s *PostgresStore) GetCampaign(ctx context.Context, id int64) (*model.Campaign, error) {
	var c model.Campaign
	err := s.pool.QueryRow(ctx,
		`SELECT id, icp, hard_filter, status, created_at FROM campaigns WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.ICP, &c.HardFilter, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get campaign %d", id)
	}
	return &c, nil
}

func (s *PostgresStore) UpdateCampaignStatus(ctx context.Context, id int64, status model.CampaignStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1 WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update campaign status %d", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("campaign not found: %d", id)
	}
	return nil
}

func (s *PostgresStore) CreateLead(ctx context.Context, lead model.Lead) (*model.Lead, error) {
	if lead.Status == "" {
		lead.Status = model.LeadStatusReady
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO leads (campaign_id, name, title, company, email, linkedin_url, avatar, industry, location, company_size, match_score, match_reason, email_subject, email_content, starred, notes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id`,
		lead.CampaignID, lead.Name, lead.Title, lead.Company, lead.Email,
		lead.LinkedinURL, lead.Avatar, lead.Industry, lead.Location,
		lead.CompanySize, lead.MatchScore, lead.MatchReason,
		lead.EmailSubject, lead.EmailContent, lead.Starred, lead.Notes,
		string(lead.Status),
	).Scan(&lead.ID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert lead")
	}

	if _, err := s.pool.Exec(ctx,
		`UPDATE stats SET leads_generated = leads_generated + 1 WHERE id = 1`,
	); err != nil {
		return nil, eris.Wrap(err, "postgres: bump leads_generated")
	}

	return &lead, nil
}

// CreateLeads bulk-inserts leads for a single campaign with COPY and returns
// the persisted rows, match score descending.
func (s *PostgresStore) CreateLeads(ctx context.Context, leads []model.Lead) ([]model.Lead, error) {
	if len(leads) == 0 {
		return nil, nil
	}

	campaignID := leads[0].CampaignID
	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		if l.CampaignID != campaignID {
			return nil, eris.Errorf("bulk insert spans campaigns %d and %d", campaignID, l.CampaignID)
		}
		if l.Status == "" {
			l.Status = model.LeadStatusReady
		}
		rows = append(rows, leadRow(l))
	}

	n, err := db.CopyFrom(ctx, s.pool, "leads", leadInsertColumns, rows)
	if err != nil {
		return nil, err
	}

	if _, err := s.pool.Exec(ctx,
		`UPDATE stats SET leads_generated = leads_generated + $1 WHERE id = 1`,
		n,
	); err != nil {
		return nil, eris.Wrap(err, "postgres: bump leads_generated")
	}

	return s.GetLeadsByCampaign(ctx, campaignID)
}

func leadRow(l model.Lead) []any {
	return []any{
		l.CampaignID, l.Name, l.Title, l.Company, l.Email, l.LinkedinURL,
		l.Avatar, l.Industry, l.Location, l.CompanySize, l.MatchScore,
		l.MatchReason, l.EmailSubject, l.EmailContent, l.Starred, l.Notes,
		string(l.Status),
	}
}

func (s *PostgresStore) GetLead(ctx context.Context, id int64) (*model.Lead, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`,
		id,
	)
	lead, err := scanLead(row)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get lead %d", id)
	}
	return lead, nil
}

func (s *PostgresStore) GetLeads(ctx context.Context) ([]model.Lead, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+leadColumns+` FROM leads ORDER BY match_score DESC, id ASC`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list leads")
	}
	defer rows.Close()

	return collectLeads(rows)
}

func (s *PostgresStore) GetLeadsByCampaign(ctx context.Context, campaignID int64) ([]model.Lead, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE campaign_id = $1 ORDER BY match_score DESC, id ASC`,
		campaignID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: list leads for campaign %d", campaignID)
	}
	defer rows.Close()

	return collectLeads(rows)
}

func (s *PostgresStore) UpdateLead(ctx context.Context, id int64, update LeadUpdate) (*model.Lead, error) {
	query := `UPDATE leads SET id = id`
	args := []any{}
	argIdx := 1

	if update.EmailSubject != nil {
		query += fmt.Sprintf(`, email_subject = $%d`, argIdx)
		args = append(args, *update.EmailSubject)
		argIdx++
	}
	if update.EmailContent != nil {
		query += fmt.Sprintf(`, email_content = $%d`, argIdx)
		args = append(args, *update.EmailContent)
		argIdx++
	}
	if update.Starred != nil {
		query += fmt.Sprintf(`, starred = $%d`, argIdx)
		args = append(args, *update.Starred)
		argIdx++
	}
	if update.Notes != nil {
		query += fmt.Sprintf(`, notes = $%d`, argIdx)
		args = append(args, *update.Notes)
		argIdx++
	}
	if update.Status != nil {
		query += fmt.Sprintf(`, status = $%d`, argIdx)
		args = append(args, string(*update.Status))
		argIdx++
		if *update.Status == model.LeadStatusSent {
			query += fmt.Sprintf(`, sent_at = $%d`, argIdx)
			args = append(args, time.Now().UTC())
			argIdx++
		}
	}

	query += fmt.Sprintf(` WHERE id = $%d`, argIdx)
	args = append(args, id)

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: update lead %d", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, eris.Errorf("lead not found: %d", id)
	}

	return s.GetLead(ctx, id)
}

func (s *PostgresStore) UpdateLeadStatus(ctx context.Context, id int64, status model.LeadStatus) error {
	var sentAt *time.Time
	if status == model.LeadStatusSent {
		now := time.Now().UTC()
		sentAt = &now
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE leads SET status = $1, sent_at = COALESCE($2, sent_at) WHERE id = $3`,
		string(status), sentAt, id,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update lead status %d", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("lead not found: %d", id)
	}
	return nil
}

func (s *PostgresStore) GetStats(ctx context.Context) (*model.Stats, error) {
	var st model.Stats
	err := s.pool.QueryRow(ctx,
		`SELECT id, leads_generated, messages_sent, responses FROM stats WHERE id = 1`,
	).Scan(&st.ID, &st.LeadsGenerated, &st.MessagesSent, &st.Responses)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get stats")
	}
	return &st, nil
}

func (s *PostgresStore) IncrementMessagesSent(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE stats SET messages_sent = messages_sent + 1 WHERE id = 1`,
	)
	return eris.Wrap(err, "postgres: increment messages_sent")
}

func scanLead(row pgx.Row) (*model.Lead, error) {
	var l model.Lead
	err := row.Scan(
		&l.ID, &l.CampaignID, &l.Name, &l.Title, &l.Company, &l.Email,
		&l.LinkedinURL, &l.Avatar, &l.Industry, &l.Location, &l.CompanySize,
		&l.MatchScore, &l.MatchReason, &l.EmailSubject, &l.EmailContent,
		&l.Starred, &l.Notes, &l.Status, &l.SentAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectLeads(rows pgx.Rows) ([]model.Lead, error) {
	var leads []model.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan lead")
		}
		leads = append(leads, *lead)
	}
	return leads, eris.Wrap(rows.Err(), "postgres: iterate leads")
}
