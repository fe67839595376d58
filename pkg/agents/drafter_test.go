package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/xrsl/applykit/pkg/errs"
)

func draftRequest() DraftRequest {
	return DraftRequest{
		JobDescription: "We are hiring a VP of Engineering.",
		CompanyName:    "Acme",
		Resume:         "20 years of engineering leadership.",
		Summary: &JobSummary{
			CompanyName:     "Acme",
			Summary:         "Senior leadership role.",
			KeyRequirements: []string{"leadership", "Go"},
			CompanyContext:  "Acme builds anvils.",
		},
		Samples: []WritingSample{
			{ID: "sample-1", Title: "Board memo", Content: "Quarterly results were strong.", WordCount: 4},
		},
	}
}

func TestDraftHappyPath(t *testing.T) {
	d := NewDrafter(canned(`{"subject": "Hello Acme", "email_body": "I would love to join.", "confidence_score": 0.9}`))

	draft, err := d.Draft(context.Background(), draftRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draft.Subject != "Hello Acme" {
		t.Errorf("Subject: got %q", draft.Subject)
	}
	if draft.EmailBody != "I would love to join." {
		t.Errorf("EmailBody: got %q", draft.EmailBody)
	}
	if draft.ConfidenceScore != 0.9 {
		t.Errorf("ConfidenceScore: got %v", draft.ConfidenceScore)
	}
}

func TestDraftConfidenceDefaults(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{"missing score", `{"subject": "S", "email_body": "B"}`, 0.85},
		{"string score", `{"subject": "S", "email_body": "B", "confidence_score": "high"}`, 0.85},
		{"null score", `{"subject": "S", "email_body": "B", "confidence_score": null}`, 0.85},
		{"numeric score", `{"subject": "S", "email_body": "B", "confidence_score": 0.4}`, 0.4},
		{"zero score", `{"subject": "S", "email_body": "B", "confidence_score": 0}`, 0},
		// Scores above 1 are passed through unmodified, not clamped.
		{"score above one", `{"subject": "S", "email_body": "B", "confidence_score": 1.5}`, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrafter(canned(tt.response))
			draft, err := d.Draft(context.Background(), draftRequest())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if draft.ConfidenceScore != tt.want {
				t.Errorf("ConfidenceScore: got %v, want %v", draft.ConfidenceScore, tt.want)
			}
		})
	}
}

func TestDraftMissingSubjectOrBody(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing subject", `{"email_body": "B", "confidence_score": 0.9}`},
		{"missing body", `{"subject": "S", "confidence_score": 0.9}`},
		{"empty subject", `{"subject": "  ", "email_body": "B"}`},
		{"not json", "no structured output today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrafter(canned(tt.response))
			_, err := d.Draft(context.Background(), draftRequest())
			if !errs.IsGeneration(err) {
				t.Errorf("expected GenerationError, got %v", err)
			}
		})
	}
}

func TestDraftRequiresSummaryAndSamples(t *testing.T) {
	d := NewDrafter(canned(`{"subject": "S", "email_body": "B"}`))

	req := draftRequest()
	req.Summary = nil
	if _, err := d.Draft(context.Background(), req); !errs.IsValidation(err) {
		t.Errorf("nil summary: expected ValidationError, got %v", err)
	}

	req = draftRequest()
	req.Samples = nil
	if _, err := d.Draft(context.Background(), req); !errs.IsValidation(err) {
		t.Errorf("no samples: expected ValidationError, got %v", err)
	}
}

func TestSamplesBlockOrder(t *testing.T) {
	samples := []WritingSample{
		{Title: "First", Content: "alpha"},
		{Title: "Second", Content: "beta"},
		{Title: "Third", Content: "gamma"},
	}

	block := SamplesBlock(samples)

	first := strings.Index(block, "Sample 1 - First:")
	second := strings.Index(block, "Sample 2 - Second:")
	third := strings.Index(block, "Sample 3 - Third:")

	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("missing sample labels in block:\n%s", block)
	}
	if !(first < second && second < third) {
		t.Error("samples not in input order")
	}
	if !strings.Contains(block, "---") {
		t.Error("expected separator between samples")
	}
}

func TestDraftPromptIncludesSamplesAndResume(t *testing.T) {
	client := canned(`{"subject": "S", "email_body": "B"}`)
	d := NewDrafter(client)

	req := draftRequest()
	if _, err := d.Draft(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := client.prompts[0]
	for _, want := range []string{req.Resume, "Board memo", "Company: Acme", "leadership, Go"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
