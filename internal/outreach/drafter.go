// Package outreach drafts personalized cold emails for scored leads. Drafting
// never fails a campaign: any model error falls back to a plain template so
// every lead leaves the pipeline with a sendable email.
package outreach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/leadgen-crm/internal/model"
	"github.com/sells-group/leadgen-crm/pkg/anthropic"
)

const draftSystemPrompt = `You are an expert cold email writer who creates highly personalized, effective outreach emails. Always respond with valid JSON.`

const draftUserPrompt = `Generate a personalized cold outreach email for the following prospect:

Lead Information:
- Name: %s
- Title: %s
- Company: %s

Target ICP: %s

Requirements:
1. Keep the email concise (under 150 words)
2. Make it highly personalized and relevant
3. Include a clear value proposition
4. End with a soft call-to-action
5. Use a professional but friendly tone
6. Don't be overly salesy

Return the response in JSON format with "subject" and "content" fields. The content should use proper line breaks with \n\n for paragraphs.`

// Email is a drafted outreach message.
type Email struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// Options configure a Drafter. Zero values fall back to sensible defaults.
type Options struct {
	Model             string
	MaxTokens         int64
	Temperature       float64
	RequestsPerSecond float64
	Concurrency       int
}

// Drafter generates outreach emails with a bounded request rate.
type Drafter struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	limiter     *rate.Limiter
	concurrency int
}

// NewDrafter creates a Drafter. A nil client is allowed: every draft then
// uses the fallback template, which keeps offline and demo runs working.
func NewDrafter(client anthropic.Client, opts Options) *Drafter {
	if opts.Model == "" {
		opts.Model = "claude-sonnet-4-20250514"
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 500
	}
	if opts.Temperature <= 0 {
		opts.Temperature = 0.7
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 5
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	return &Drafter{
		client:      client,
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		limiter:     rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Concurrency),
		concurrency: opts.Concurrency,
	}
}

// Draft generates an email for one lead. It never returns an error: model
// failures, malformed responses, and a nil client all produce the fallback.
func (d *Drafter) Draft(ctx context.Context, lead model.Candidate, icp string) Email {
	if d.client == nil {
		return fallbackEmail(lead)
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return fallbackEmail(lead)
	}

	prompt := fmt.Sprintf(draftUserPrompt, lead.Name, lead.Title, lead.Company, icp)
	temp := d.temperature
	resp, err := d.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       d.model,
		MaxTokens:   d.maxTokens,
		System:      draftSystemPrompt,
		Temperature: &temp,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		zap.L().Warn("outreach: draft failed, using fallback",
			zap.String("lead", lead.Name),
			zap.String("company", lead.Company),
			zap.Error(err),
		)
		return fallbackEmail(lead)
	}

	resp.Usage.LogUsage(d.model, "outreach")
	return parseEmail(resp.Text(), lead)
}

// DraftAll drafts emails for every lead with bounded concurrency. The result
// is index-aligned with the input.
func (d *Drafter) DraftAll(ctx context.Context, leads []model.ScoredLead, icp string) []Email {
	out := make([]Email, len(leads))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for i, lead := range leads {
		g.Go(func() error {
			out[i] = d.Draft(gCtx, lead.Candidate, icp)
			return nil
		})
	}

	_ = g.Wait()
	return out
}

func parseEmail(text string, lead model.Candidate) Email {
	var email Email
	if err := json.Unmarshal([]byte(cleanJSON(text)), &email); err != nil {
		zap.L().Warn("outreach: unparseable draft response, using fallback",
			zap.String("lead", lead.Name),
			zap.Error(err),
		)
		return fallbackEmail(lead)
	}

	if email.Subject == "" {
		email.Subject = "Quick question about your team"
	}
	if email.Content == "" {
		email.Content = "Hi there,\n\nI'd love to connect with you about your current challenges.\n\nBest regards"
	}
	return email
}

func fallbackEmail(lead model.Candidate) Email {
	return Email{
		Subject: fmt.Sprintf("Partnership Opportunity - %s", lead.Company),
		Content: fmt.Sprintf("Hi %s,\n\nI noticed %s and thought you might be interested in our solutions.\n\nWould you be open to a brief conversation?\n\nBest regards", lead.Name, lead.Company),
	}
}

// cleanJSON strips markdown code fences and extracts the outermost JSON
// object from a model response.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
