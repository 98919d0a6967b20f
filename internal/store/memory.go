package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-crm/internal/model"
)

// MemoryStore implements Store with in-process maps. It backs demo runs and
// tests where no database is configured.
type MemoryStore struct {
	mu             sync.Mutex
	campaigns      map[int64]*model.Campaign
	leads          map[int64]*model.Lead
	stats          model.Stats
	nextCampaignID int64
	nextLeadID     int64
}

// NewMemory creates an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		campaigns:      make(map[int64]*model.Campaign),
		leads:          make(map[int64]*model.Lead),
		stats:          model.Stats{ID: 1},
		nextCampaignID: 1,
		nextLeadID:     1,
	}
}

func (s *MemoryStore) Migrate(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) CreateCampaign(_ context.Context, icp, hardFilter string) (*model.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &model.Campaign{
		ID:         s.nextCampaignID,
		ICP:        icp,
		HardFilter: hardFilter,
		Status:     model.CampaignStatusProcessing,
		CreatedAt:  time.Now().UTC(),
	}
	s.nextCampaignID++
	s.campaigns[c.ID] = c

	cp := *c
	return &cp, nil
}

func (s *MemoryStore) GetCampaign(_ context.Context, id int64) (*model.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, eris.Errorf("campaign not found: %d", id)
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryStore) UpdateCampaignStatus(_ context.Context, id int64, status model.CampaignStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return eris.Errorf("campaign not found: %d", id)
	}
	c.Status = status
	return nil
}

func (s *MemoryStore) CreateLead(_ context.Context, lead model.Lead) (*model.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createLeadLocked(lead), nil
}

func (s *MemoryStore) createLeadLocked(lead model.Lead) *model.Lead {
	lead.ID = s.nextLeadID
	s.nextLeadID++
	if lead.Status == "" {
		lead.Status = model.LeadStatusReady
	}
	s.leads[lead.ID] = &lead
	s.stats.LeadsGenerated++

	cp := lead
	return &cp
}

func (s *MemoryStore) CreateLeads(_ context.Context, leads []model.Lead) ([]model.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		out = append(out, *s.createLeadLocked(l))
	}
	return out, nil
}

func (s *MemoryStore) GetLead(_ context.Context, id int64) (*model.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok {
		return nil, eris.Errorf("lead not found: %d", id)
	}
	cp := *l
	return &cp, nil
}

func (s *MemoryStore) GetLeads(context.Context) ([]model.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collectLocked(func(*model.Lead) bool { return true }), nil
}

func (s *MemoryStore) GetLeadsByCampaign(_ context.Context, campaignID int64) ([]model.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collectLocked(func(l *model.Lead) bool { return l.CampaignID == campaignID }), nil
}

// collectLocked returns matching leads, match score descending with id as
// tiebreaker, mirroring the database backends.
func (s *MemoryStore) collectLocked(keep func(*model.Lead) bool) []model.Lead {
	var leads []model.Lead
	for _, l := range s.leads {
		if keep(l) {
			leads = append(leads, *l)
		}
	}
	sort.Slice(leads, func(i, j int) bool {
		if leads[i].MatchScore != leads[j].MatchScore {
			return leads[i].MatchScore > leads[j].MatchScore
		}
		return leads[i].ID < leads[j].ID
	})
	return leads
}

func (s *MemoryStore) UpdateLead(_ context.Context, id int64, update LeadUpdate) (*model.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok {
		return nil, eris.Errorf("lead not found: %d", id)
	}

	if update.EmailSubject != nil {
		l.EmailSubject = *update.EmailSubject
	}
	if update.EmailContent != nil {
		l.EmailContent = *update.EmailContent
	}
	if update.Starred != nil {
		l.Starred = *update.Starred
	}
	if update.Notes != nil {
		l.Notes = *update.Notes
	}
	if update.Status != nil {
		l.Status = *update.Status
		if *update.Status == model.LeadStatusSent {
			now := time.Now().UTC()
			l.SentAt = &now
		}
	}

	cp := *l
	return &cp, nil
}

func (s *MemoryStore) UpdateLeadStatus(_ context.Context, id int64, status model.LeadStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok {
		return eris.Errorf("lead not found: %d", id)
	}
	l.Status = status
	if status == model.LeadStatusSent {
		now := time.Now().UTC()
		l.SentAt = &now
	}
	return nil
}

func (s *MemoryStore) GetStats(context.Context) (*model.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := s.stats
	return &cp, nil
}

func (s *MemoryStore) IncrementMessagesSent(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.MessagesSent++
	return nil
}
