// Package campaign orchestrates a lead-generation run: prospect sourcing,
// scoring and ranking, email drafting, and persistence.
package campaign

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-crm/internal/match"
	"github.com/sells-group/leadgen-crm/internal/model"
	"github.com/sells-group/leadgen-crm/internal/outreach"
	"github.com/sells-group/leadgen-crm/internal/store"
)

// Generator supplies the raw candidate pool for an ICP.
type Generator interface {
	Generate(icp string) []model.Candidate
}

// Workflow runs campaigns end to end.
type Workflow struct {
	store     store.Store
	generator Generator
	drafter   *outreach.Drafter
}

// NewWorkflow wires a Workflow from its dependencies.
func NewWorkflow(s store.Store, g Generator, d *outreach.Drafter) *Workflow {
	return &Workflow{store: s, generator: g, drafter: d}
}

// Run executes a full campaign. The campaign row is created first so a
// failed run stays visible with status "failed".
func (w *Workflow) Run(ctx context.Context, icp, hardFilter string) (*model.Campaign, []model.Lead, error) {
	if icp == "" {
		return nil, nil, eris.New("campaign: icp is required")
	}

	campaign, err := w.store.CreateCampaign(ctx, icp, hardFilter)
	if err != nil {
		return nil, nil, err
	}

	zap.L().Info("campaign: started",
		zap.Int64("campaign_id", campaign.ID),
		zap.String("icp", icp),
	)

	candidates := w.generator.Generate(icp)
	scored := match.Rank(candidates, icp, hardFilter)

	zap.L().Info("campaign: scored candidates",
		zap.Int64("campaign_id", campaign.ID),
		zap.Int("candidates", len(candidates)),
		zap.Int("qualified", len(scored)),
	)

	emails := w.drafter.DraftAll(ctx, scored, icp)

	leads := make([]model.Lead, 0, len(scored))
	for i, sl := range scored {
		leads = append(leads, model.Lead{
			CampaignID:   campaign.ID,
			Name:         sl.Name,
			Title:        sl.Title,
			Company:      sl.Company,
			Email:        sl.Email,
			LinkedinURL:  sl.LinkedinURL,
			Avatar:       sl.Avatar,
			Industry:     sl.Industry,
			Location:     sl.Location,
			CompanySize:  sl.CompanySize,
			MatchScore:   sl.MatchScore,
			MatchReason:  sl.MatchReason,
			EmailSubject: emails[i].Subject,
			EmailContent: emails[i].Content,
			Status:       model.LeadStatusReady,
		})
	}

	created, err := w.store.CreateLeads(ctx, leads)
	if err != nil {
		if statusErr := w.store.UpdateCampaignStatus(ctx, campaign.ID, model.CampaignStatusFailed); statusErr != nil {
			zap.L().Warn("campaign: failed to mark campaign failed",
				zap.Int64("campaign_id", campaign.ID),
				zap.Error(statusErr),
			)
		}
		return nil, nil, eris.Wrapf(err, "campaign: persist leads for campaign %d", campaign.ID)
	}

	if err := w.store.UpdateCampaignStatus(ctx, campaign.ID, model.CampaignStatusCompleted); err != nil {
		return nil, nil, err
	}
	campaign.Status = model.CampaignStatusCompleted

	zap.L().Info("campaign: completed",
		zap.Int64("campaign_id", campaign.ID),
		zap.Int("leads", len(created)),
	)

	return campaign, created, nil
}
