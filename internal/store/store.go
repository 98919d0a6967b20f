// Package store persists campaigns, leads, and activity counters. Three
// backends implement the same interface: PostgreSQL for shared deployments,
// SQLite for single-user installs, and an in-memory store for demos and tests.
package store

import (
	"context"

	"github.com/sells-group/leadgen-crm/internal/model"
)

// LeadUpdate is a partial update applied to a lead. Nil fields are left
// untouched. Setting Status to "sent" also stamps sent_at.
type LeadUpdate struct {
	EmailSubject *string           `json:"email_subject,omitempty"`
	EmailContent *string           `json:"email_content,omitempty"`
	Starred      *bool             `json:"starred,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
	Status       *model.LeadStatus `json:"status,omitempty"`
}

// Store defines the persistence interface for the lead-generation pipeline.
type Store interface {
	// Campaigns
	CreateCampaign(ctx context.Context, icp, hardFilter string) (*model.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*model.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id int64, status model.CampaignStatus) error

	// Leads
	CreateLead(ctx context.Context, lead model.Lead) (*model.Lead, error)
	CreateLeads(ctx context.Context, leads []model.Lead) ([]model.Lead, error)
	GetLead(ctx context.Context, id int64) (*model.Lead, error)
	GetLeads(ctx context.Context) ([]model.Lead, error)
	GetLeadsByCampaign(ctx context.Context, campaignID int64) ([]model.Lead, error)
	UpdateLead(ctx context.Context, id int64, update LeadUpdate) (*model.Lead, error)
	UpdateLeadStatus(ctx context.Context, id int64, status model.LeadStatus) error

	// Stats
	GetStats(ctx context.Context) (*model.Stats, error)
	IncrementMessagesSent(ctx context.Context) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
