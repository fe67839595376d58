// Package agents implements the two model-backed wizard stages: the job
// description Summarizer and the intro email Drafter.
//
// System prompts are embedded at compile time from the prompts/
// directory. Both agents expect the model to return a single JSON
// object and tolerate surrounding prose via pkg/jsonx.
package agents

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xrsl/applykit/pkg/ai"
	"github.com/xrsl/applykit/pkg/errs"
	"github.com/xrsl/applykit/pkg/jsonx"
	clog "github.com/xrsl/applykit/pkg/log"
)

//go:embed prompts/summarize_system.md
var summarizeSystemPrompt string

// Summarizer turns a raw job description into a JobSummary.
type Summarizer struct {
	client ai.Client
}

// NewSummarizer creates a Summarizer backed by the given model client.
func NewSummarizer(client ai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize analyzes a job description. It either returns a fully
// populated JobSummary or fails; partially populated summaries are
// never returned. Model failures are not retried here.
func (s *Summarizer) Summarize(ctx context.Context, jobDescription string) (*JobSummary, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errs.Validation("job_description", "is required")
	}

	userPrompt := buildSummarizePrompt(jobDescription)

	raw, err := generate(ctx, s.client, summarizeSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	span, err := jsonx.ExtractObject(raw)
	if err != nil {
		clog.Debug("summarizer: no JSON in model output", "raw", raw)
		return nil, errs.Generation("summarize", raw, err)
	}

	var summary JobSummary
	if err := json.Unmarshal([]byte(span), &summary); err != nil {
		clog.Debug("summarizer: model output failed to parse", "raw", raw, "error", err)
		return nil, errs.Generation("summarize", raw, err)
	}

	if err := validateSummary(&summary); err != nil {
		clog.Debug("summarizer: model output failed validation", "raw", raw, "error", err)
		return nil, errs.Generation("summarize", raw, err)
	}

	return &summary, nil
}

func buildSummarizePrompt(jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("Analyze this job description and provide:\n")
	sb.WriteString("1. The company name\n")
	sb.WriteString("2. A concise summary (max 300 words) that captures the essence of the role\n")
	sb.WriteString("3. 5-7 key requirements as a list (technical skills, experience, etc.)\n")
	sb.WriteString("4. Company context including culture, mission, and what makes them unique\n")
	sb.WriteString("\nJob Description:\n")
	sb.WriteString(jobDescription)
	return sb.String()
}

func validateSummary(s *JobSummary) error {
	if strings.TrimSpace(s.CompanyName) == "" {
		return fmt.Errorf("missing company_name")
	}
	if strings.TrimSpace(s.Summary) == "" {
		return fmt.Errorf("missing summary")
	}
	if len(s.KeyRequirements) == 0 {
		return fmt.Errorf("missing key_requirements")
	}
	for i, req := range s.KeyRequirements {
		if strings.TrimSpace(req) == "" {
			return fmt.Errorf("key_requirements[%d] is empty", i)
		}
	}
	if strings.TrimSpace(s.CompanyContext) == "" {
		return fmt.Errorf("missing company_context")
	}
	return nil
}

// generate routes through the system-prompt path when the provider
// supports it, matching how the providers are built in pkg/ai.
func generate(ctx context.Context, client ai.Client, systemPrompt, userPrompt string) (string, error) {
	if caching, ok := client.(ai.CachingClient); ok {
		return caching.GenerateContentWithSystem(ctx, systemPrompt, userPrompt)
	}
	return client.GenerateContent(ctx, systemPrompt+"\n\n"+userPrompt)
}
