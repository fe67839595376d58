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

//go:embed prompts/draft_system.md
var draftSystemPrompt string

// defaultConfidence is used when the model omits confidence_score or
// returns something non-numeric. Numeric values are passed through
// unmodified, including values above 1.
const defaultConfidence = 0.85

// DraftRequest carries everything the Drafter needs. Summarize must
// have run first: Summary is required.
type DraftRequest struct {
	JobDescription string
	CompanyName    string
	Resume         string
	Summary        *JobSummary
	Samples        []WritingSample
}

// Drafter writes an introduction email conditioned on the caller's
// writing samples.
type Drafter struct {
	client ai.Client
}

// NewDrafter creates a Drafter backed by the given model client.
func NewDrafter(client ai.Client) *Drafter {
	return &Drafter{client: client}
}

// Draft produces an EmailDraft or fails with a GenerationError when the
// model output is unusable. Subject and body are mandatory;
// confidence_score is the only field with a default.
func (d *Drafter) Draft(ctx context.Context, req DraftRequest) (*EmailDraft, error) {
	if err := validateDraftRequest(req); err != nil {
		return nil, err
	}

	userPrompt := buildDraftPrompt(req)

	raw, err := generate(ctx, d.client, draftSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("draft: %w", err)
	}

	span, err := jsonx.ExtractObject(raw)
	if err != nil {
		clog.Debug("drafter: no JSON in model output", "raw", raw)
		return nil, errs.Generation("draft", raw, err)
	}

	var parsed struct {
		Subject         string `json:"subject"`
		EmailBody       string `json:"email_body"`
		ConfidenceScore any    `json:"confidence_score"`
	}
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		clog.Debug("drafter: model output failed to parse", "raw", raw, "error", err)
		return nil, errs.Generation("draft", raw, err)
	}

	if strings.TrimSpace(parsed.Subject) == "" || strings.TrimSpace(parsed.EmailBody) == "" {
		clog.Debug("drafter: missing subject or email_body", "raw", raw)
		return nil, errs.Generation("draft", raw, fmt.Errorf("missing subject or email_body"))
	}

	confidence := defaultConfidence
	if score, ok := parsed.ConfidenceScore.(float64); ok {
		confidence = score
	}

	return &EmailDraft{
		Subject:         parsed.Subject,
		EmailBody:       parsed.EmailBody,
		ConfidenceScore: confidence,
	}, nil
}

func validateDraftRequest(req DraftRequest) error {
	if strings.TrimSpace(req.JobDescription) == "" {
		return errs.Validation("job_description", "is required")
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		return errs.Validation("company_name", "is required")
	}
	if strings.TrimSpace(req.Resume) == "" {
		return errs.Validation("resume", "is required")
	}
	if req.Summary == nil {
		return errs.Validation("jd_summary", "is required; run summarize first")
	}
	if len(req.Samples) == 0 {
		return errs.Validation("writing_samples", "at least one sample is required")
	}
	return nil
}

// SamplesBlock concatenates writing samples in input order into a
// single labeled block for style conditioning.
func SamplesBlock(samples []WritingSample) string {
	parts := make([]string, 0, len(samples))
	for i, sample := range samples {
		parts = append(parts, fmt.Sprintf("Sample %d - %s:\n%s", i+1, sample.Title, sample.Content))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

func buildDraftPrompt(req DraftRequest) string {
	var sb strings.Builder
	sb.WriteString("Based on this resume and writing samples, draft an introduction email for this role:\n\n")
	sb.WriteString("MY RESUME:\n")
	sb.WriteString(req.Resume)
	sb.WriteString("\n\nWRITING SAMPLES:\n")
	sb.WriteString(SamplesBlock(req.Samples))
	sb.WriteString("\n\nJOB DETAILS:\n")
	sb.WriteString("Company: " + req.CompanyName + "\n")
	sb.WriteString("Role Summary: " + req.Summary.Summary + "\n")
	sb.WriteString("Key Requirements: " + strings.Join(req.Summary.KeyRequirements, ", ") + "\n")
	sb.WriteString("\nFULL JOB DESCRIPTION:\n")
	sb.WriteString(req.JobDescription)
	sb.WriteString("\n\nDraft a compelling introduction email that:\n")
	sb.WriteString("- Opens with a strong, personalized hook\n")
	sb.WriteString("- Demonstrates understanding of the role and company\n")
	sb.WriteString("- Highlights 2-3 most relevant qualifications FROM THE RESUME that match the key requirements\n")
	sb.WriteString("- Uses specific examples or achievements from the resume\n")
	sb.WriteString("- Shows enthusiasm without being overly eager\n")
	sb.WriteString("- Closes with a clear next step\n")
	sb.WriteString("- Matches the tone and style from the writing samples\n")
	return sb.String()
}
