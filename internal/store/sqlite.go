package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/leadgen-crm/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := database.Exec(pragma); err != nil {
			database.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: database}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS campaigns (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	icp         TEXT NOT NULL,
	hard_filter TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'processing',
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS leads (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	campaign_id   INTEGER NOT NULL REFERENCES campaigns(id),
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
	starred       INTEGER NOT NULL DEFAULT 0,
	notes         TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL DEFAULT 'ready',
	sent_at       DATETIME
);

CREATE INDEX IF NOT EXISTS idx_leads_campaign_id ON leads(campaign_id);
CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
CREATE INDEX IF NOT EXISTS idx_campaigns_status ON campaigns(status);

CREATE TABLE IF NOT EXISTS stats (
	id              INTEGER PRIMARY KEY,
	leads_generated INTEGER NOT NULL DEFAULT 0,
	messages_sent   INTEGER NOT NULL DEFAULT 0,
	responses       INTEGER NOT NULL DEFAULT 0
);

INSERT OR IGNORE INTO stats (id, leads_generated, messages_sent, responses) VALUES (1, 0, 0, 0);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateCampaign(ctx context.Context, icp, hardFilter string) (*model.Campaign, error) {
	now := time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO campaigns (icp, hard_filter, status, created_at) VALUES (?, ?, ?, ?)`,
		icp, hardFilter, string(model.CampaignStatusProcessing), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert campaign")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: campaign id")
	}

	return &model.Campaign{
		ID:         id,
		ICP:        icp,
		HardFilter: hardFilter,
		Status:     model.CampaignStatusProcessing,
		CreatedAt:  now,
	}, nil
}

func (s *SQLiteStore) GetCampaign(ctx context.Context, id int64) (*model.Campaign, error) {
	var c model.Campaign
	err := s.db.QueryRowContext(ctx,
		`SELECT id, icp, hard_filter, status, created_at FROM campaigns WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.ICP, &c.HardFilter, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get campaign %d", id)
	}
	return &c, nil
}

func (s *SQLiteStore) UpdateCampaignStatus(ctx context.Context, id int64, status model.CampaignStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE campaigns SET status = ? WHERE id = ?`,
		string(status), id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update campaign status %d", id)
	}
	return checkRowsAffected(res, "campaign", id)
}

func (s *SQLiteStore) CreateLead(ctx context.Context, lead model.Lead) (*model.Lead, error) {
	if lead.Status == "" {
		lead.Status = model.LeadStatusReady
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO leads (campaign_id, name, title, company, email, linkedin_url, avatar, industry, location, company_size, match_score, match_reason, email_subject, email_content, starred, notes, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lead.CampaignID, lead.Name, lead.Title, lead.Company, lead.Email,
		lead.LinkedinURL, lead.Avatar, lead.Industry, lead.Location,
		lead.CompanySize, lead.MatchScore, lead.MatchReason,
		lead.EmailSubject, lead.EmailContent, lead.Starred, lead.Notes,
		string(lead.Status),
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert lead")
	}
	lead.ID, err = res.LastInsertId()
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: lead id")
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE stats SET leads_generated = leads_generated + 1 WHERE id = 1`,
	); err != nil {
		return nil, eris.Wrap(err, "sqlite: bump leads_generated")
	}

	return &lead, nil
}

func (s *SQLiteStore) CreateLeads(ctx context.Context, leads []model.Lead) ([]model.Lead, error) {
	if len(leads) == 0 {
		return nil, nil
	}

	out := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		created, err := s.CreateLead(ctx, l)
		if err != nil {
			return nil, err
		}
		out = append(out, *created)
	}
	return out, nil
}

func (s *SQLiteStore) GetLead(ctx context.Context, id int64) (*model.Lead, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = ?`,
		id,
	)
	lead, err := scanSQLiteLead(row)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get lead %d", id)
	}
	return lead, nil
}

func (s *SQLiteStore) GetLeads(ctx context.Context) ([]model.Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+leadColumns+` FROM leads ORDER BY match_score DESC, id ASC`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list leads")
	}
	defer rows.Close()

	return collectSQLiteLeads(rows)
}

func (s *SQLiteStore) GetLeadsByCampaign(ctx context.Context, campaignID int64) ([]model.Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE campaign_id = ? ORDER BY match_score DESC, id ASC`,
		campaignID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list leads for campaign %d", campaignID)
	}
	defer rows.Close()

	return collectSQLiteLeads(rows)
}

func (s *SQLiteStore) UpdateLead(ctx context.Context, id int64, update LeadUpdate) (*model.Lead, error) {
	query := `UPDATE leads SET id = id`
	args := []any{}

	if update.EmailSubject != nil {
		query += `, email_subject = ?`
		args = append(args, *update.EmailSubject)
	}
	if update.EmailContent != nil {
		query += `, email_content = ?`
		args = append(args, *update.EmailContent)
	}
	if update.Starred != nil {
		query += `, starred = ?`
		args = append(args, *update.Starred)
	}
	if update.Notes != nil {
		query += `, notes = ?`
		args = append(args, *update.Notes)
	}
	if update.Status != nil {
		query += `, status = ?`
		args = append(args, string(*update.Status))
		if *update.Status == model.LeadStatusSent {
			query += `, sent_at = ?`
			args = append(args, time.Now().UTC())
		}
	}

	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: update lead %d", id)
	}
	if err := checkRowsAffected(res, "lead", id); err != nil {
		return nil, err
	}

	return s.GetLead(ctx, id)
}

func (s *SQLiteStore) UpdateLeadStatus(ctx context.Context, id int64, status model.LeadStatus) error {
	var res sql.Result
	var err error
	if status == model.LeadStatusSent {
		res, err = s.db.ExecContext(ctx,
			`UPDATE leads SET status = ?, sent_at = ? WHERE id = ?`,
			string(status), time.Now().UTC(), id,
		)
	} else {
		res, err = s.db.ExecContext(ctx,
			`UPDATE leads SET status = ? WHERE id = ?`,
			string(status), id,
		)
	}
	if err != nil {
		return eris.Wrapf(err, "sqlite: update lead status %d", id)
	}
	return checkRowsAffected(res, "lead", id)
}

func (s *SQLiteStore) GetStats(ctx context.Context) (*model.Stats, error) {
	var st model.Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT id, leads_generated, messages_sent, responses FROM stats WHERE id = 1`,
	).Scan(&st.ID, &st.LeadsGenerated, &st.MessagesSent, &st.Responses)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get stats")
	}
	return &st, nil
}

func (s *SQLiteStore) IncrementMessagesSent(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE stats SET messages_sent = messages_sent + 1 WHERE id = 1`,
	)
	return eris.Wrap(err, "sqlite: increment messages_sent")
}

func checkRowsAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %d", entity, id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanSQLiteLead(row scannable) (*model.Lead, error) {
	var l model.Lead
	var sentAt sql.NullTime
	err := row.Scan(
		&l.ID, &l.CampaignID, &l.Name, &l.Title, &l.Company, &l.Email,
		&l.LinkedinURL, &l.Avatar, &l.Industry, &l.Location, &l.CompanySize,
		&l.MatchScore, &l.MatchReason, &l.EmailSubject, &l.EmailContent,
		&l.Starred, &l.Notes, &l.Status, &sentAt,
	)
	if err != nil {
		return nil, err
	}
	if sentAt.Valid {
		t := sentAt.Time
		l.SentAt = &t
	}
	return &l, nil
}

func collectSQLiteLeads(rows *sql.Rows) ([]model.Lead, error) {
	var leads []model.Lead
	for rows.Next() {
		lead, err := scanSQLiteLead(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan lead")
		}
		leads = append(leads, *lead)
	}
	return leads, eris.Wrap(rows.Err(), "sqlite: iterate leads")
}
