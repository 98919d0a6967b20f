package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-crm/internal/campaign"
	"github.com/sells-group/leadgen-crm/internal/config"
	"github.com/sells-group/leadgen-crm/internal/outreach"
	"github.com/sells-group/leadgen-crm/internal/prospect"
	"github.com/sells-group/leadgen-crm/internal/store"
	"github.com/sells-group/leadgen-crm/pkg/anthropic"
)

// env bundles the wired dependencies shared by the commands.
type env struct {
	store    store.Store
	workflow *campaign.Workflow
}

func initEnv(ctx context.Context) (*env, error) {
	s, err := config.OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	var client anthropic.Client
	if cfg.Anthropic.Key != "" {
		client = anthropic.NewClient(cfg.Anthropic.Key)
	} else {
		zap.L().Warn("anthropic key not configured, outreach emails use the fallback template")
	}

	drafter := outreach.NewDrafter(client, outreach.Options{
		Model:             cfg.Anthropic.Model,
		MaxTokens:         cfg.Outreach.MaxTokens,
		Temperature:       cfg.Outreach.Temperature,
		RequestsPerSecond: cfg.Outreach.RequestsPerSecond,
		Concurrency:       cfg.Outreach.Concurrency,
	})

	return &env{
		store:    s,
		workflow: campaign.NewWorkflow(s, prospect.NewGenerator(), drafter),
	}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		zap.L().Warn("closing store", zap.Error(err))
	}
}
