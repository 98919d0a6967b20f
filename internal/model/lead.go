package model

import "time"

// CampaignStatus represents the current state of a lead-generation campaign.
type CampaignStatus string

const (
	CampaignStatusProcessing CampaignStatus = "processing"
	CampaignStatusCompleted  CampaignStatus = "completed"
	CampaignStatusFailed     CampaignStatus = "failed"
)

// Campaign represents one lead-generation run driven by a free-text ICP.
type Campaign struct {
	ID         int64          `json:"id"`
	ICP        string         `json:"icp"`
	HardFilter string         `json:"hard_filter,omitempty"`
	Status     CampaignStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

// LeadStatus represents the outreach state of a lead.
type LeadStatus string

const (
	LeadStatusReady     LeadStatus = "ready"
	LeadStatusSent      LeadStatus = "sent"
	LeadStatusResponded LeadStatus = "responded"
)

// Candidate is a raw company/contact record supplied by the prospect
// generator. The scoring engine reads it but never mutates it.
type Candidate struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	CompanySize string `json:"company_size"`
}

// ScoredLead is a Candidate annotated with a 0-100 match score and a
// human-readable justification.
type ScoredLead struct {
	Candidate
	MatchScore  int    `json:"match_score"`
	MatchReason string `json:"match_reason"`
}

// Lead is a persisted prospect contact with its drafted outreach email.
type Lead struct {
	ID           int64      `json:"id"`
	CampaignID   int64      `json:"campaign_id"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Email        string     `json:"email"`
	LinkedinURL  string     `json:"linkedin_url,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	Industry     string     `json:"industry,omitempty"`
	Location     string     `json:"location,omitempty"`
	CompanySize  string     `json:"company_size,omitempty"`
	MatchScore   int        `json:"match_score"`
	MatchReason  string     `json:"match_reason,omitempty"`
	EmailSubject string     `json:"email_subject,omitempty"`
	EmailContent string     `json:"email_content,omitempty"`
	Starred      bool       `json:"starred"`
	Notes        string     `json:"notes,omitempty"`
	Status       LeadStatus `json:"status"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

// Stats aggregates campaign activity counters for the dashboard.
type Stats struct {
	ID             int64 `json:"id"`
	LeadsGenerated int   `json:"leads_generated"`
	MessagesSent   int   `json:"messages_sent"`
	Responses      int   `json:"responses"`
}
