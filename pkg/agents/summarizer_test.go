package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xrsl/applykit/pkg/errs"
)

// fakeClient implements ai.Client for testing.
type fakeClient struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
	prompts    []string
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.GenerateFn != nil {
		return f.GenerateFn(ctx, prompt)
	}
	return "", nil
}

func (f *fakeClient) Close() {}

func canned(response string) *fakeClient {
	return &fakeClient{
		GenerateFn: func(ctx context.Context, prompt string) (string, error) {
			return response, nil
		},
	}
}

const validSummaryJSON = `{
	"company_name": "Acme",
	"summary": "A role doing things.",
	"key_requirements": ["Go", "distributed systems", "leadership"],
	"company_context": "Acme builds anvils."
}`

func TestSummarizeHappyPath(t *testing.T) {
	client := canned("Here is your summary:\n" + validSummaryJSON + "\nHope that helps!")
	s := NewSummarizer(client)

	summary, err := s.Summarize(context.Background(), "We are hiring a VP of Engineering...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.CompanyName != "Acme" {
		t.Errorf("CompanyName: got %q", summary.CompanyName)
	}
	if len(summary.KeyRequirements) != 3 {
		t.Errorf("KeyRequirements: got %d entries", len(summary.KeyRequirements))
	}
	if summary.KeyRequirements[0] != "Go" {
		t.Errorf("KeyRequirements order not preserved: got %q first", summary.KeyRequirements[0])
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := NewSummarizer(canned(validSummaryJSON))

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := s.Summarize(context.Background(), input)
		if !errs.IsValidation(err) {
			t.Errorf("input %q: expected ValidationError, got %v", input, err)
		}
	}
}

func TestSummarizeNoJSON(t *testing.T) {
	s := NewSummarizer(canned("I'm sorry, I can't produce a summary for that."))

	_, err := s.Summarize(context.Background(), "some job description")
	if !errs.IsGeneration(err) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestSummarizeMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing company_name", `{"summary": "s", "key_requirements": ["a"], "company_context": "c"}`},
		{"missing summary", `{"company_name": "Acme", "key_requirements": ["a"], "company_context": "c"}`},
		{"empty requirements", `{"company_name": "Acme", "summary": "s", "key_requirements": [], "company_context": "c"}`},
		{"missing company_context", `{"company_name": "Acme", "summary": "s", "key_requirements": ["a"]}`},
		{"non-string requirement", `{"company_name": "Acme", "summary": "s", "key_requirements": [1, 2], "company_context": "c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSummarizer(canned(tt.response))
			summary, err := s.Summarize(context.Background(), "job description")
			if !errs.IsGeneration(err) {
				t.Fatalf("expected GenerationError, got %v", err)
			}
			if summary != nil {
				t.Error("partially populated summary must not be returned")
			}
		})
	}
}

func TestSummarizeErrorHidesModelOutput(t *testing.T) {
	raw := "SECRET-MARKER the model rambled instead of producing JSON"
	s := NewSummarizer(canned(raw))

	_, err := s.Summarize(context.Background(), "job description")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "SECRET-MARKER") {
		t.Errorf("error message leaked raw model output: %q", err.Error())
	}
}

func TestSummarizeModelFailureIsFatal(t *testing.T) {
	boom := errors.New("api unavailable")
	client := &fakeClient{
		GenerateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", boom
		},
	}
	s := NewSummarizer(client)

	_, err := s.Summarize(context.Background(), "job description")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped model error, got %v", err)
	}
	// A single failure is fatal: exactly one model call.
	if len(client.prompts) != 1 {
		t.Errorf("expected 1 model call, got %d", len(client.prompts))
	}
}

func TestSummarizePromptContainsJobDescription(t *testing.T) {
	client := canned(validSummaryJSON)
	s := NewSummarizer(client)

	jd := "VP of Engineering at TechCorp, remote, Go and Kubernetes."
	if _, err := s.Summarize(context.Background(), jd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.prompts) != 1 || !strings.Contains(client.prompts[0], jd) {
		t.Error("prompt should embed the job description text")
	}
}
