package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xrsl/applykit/pkg/agents"
	"github.com/xrsl/applykit/pkg/errs"
	"github.com/xrsl/applykit/pkg/publish"
	"github.com/xrsl/applykit/pkg/wizard"
)

type fakeModel struct {
	response string
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

func (f *fakeModel) Close() {}

type fakePublisher struct {
	result *publish.Result
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, req publish.Request) (*publish.Result, error) {
	return f.result, f.err
}

type fakeFetcher struct {
	text string
	err  error
	urls []string
}

func (f *fakeFetcher) JobText(ctx context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	return f.text, f.err
}

const summaryJSON = `{"company_name": "Acme", "summary": "A role.", "key_requirements": ["go"], "company_context": "Context."}`
const draftJSON = `{"subject": "Hi", "email_body": "Body", "confidence_score": 0.9}`

func newTestServer(summarizeResp, draftResp string, pub publish.Publisher, fetcher JobTexter) *Server {
	if pub == nil {
		pub = &fakePublisher{result: &publish.Result{
			RepoURL:   "https://github.com/u/r",
			PRURL:     "https://github.com/u/r/pull/1",
			CommitSHA: "abc1234",
		}}
	}
	ctrl := wizard.NewController(
		agents.NewSummarizer(&fakeModel{response: summarizeResp}),
		agents.NewDrafter(&fakeModel{response: draftResp}),
		pub,
	)
	return New(ctrl, fetcher)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	engine := newTestServer(summaryJSON, draftJSON, nil, nil).Engine()
	w := doJSON(t, engine, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}

func TestSummarizeEndpoint(t *testing.T) {
	engine := newTestServer(summaryJSON, draftJSON, nil, nil).Engine()

	w := doJSON(t, engine, http.MethodPost, "/api/summarize", map[string]string{
		"job_description": "We need a Go engineer",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body)
	}

	var summary agents.JobSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}
	if summary.CompanyName != "Acme" {
		t.Errorf("company_name = %q", summary.CompanyName)
	}
}

func TestSummarizeRequiresInput(t *testing.T) {
	engine := newTestServer(summaryJSON, draftJSON, nil, nil).Engine()

	w := doJSON(t, engine, http.MethodPost, "/api/summarize", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "job_description: is required") {
		t.Errorf("validation message not verbatim: %s", w.Body)
	}
}

func TestSummarizeFromURL(t *testing.T) {
	fetcher := &fakeFetcher{text: "fetched posting text"}
	engine := newTestServer(summaryJSON, draftJSON, nil, fetcher).Engine()

	w := doJSON(t, engine, http.MethodPost, "/api/summarize", map[string]string{
		"job_url": "https://jobs.example/123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body)
	}
	if len(fetcher.urls) != 1 || fetcher.urls[0] != "https://jobs.example/123" {
		t.Errorf("fetcher calls: %v", fetcher.urls)
	}
}

func TestGenerationErrorIsGeneric(t *testing.T) {
	engine := newTestServer("SECRET-MARKER not json", draftJSON, nil, nil).Engine()

	w := doJSON(t, engine, http.MethodPost, "/api/summarize", map[string]string{
		"job_description": "jd",
	})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "SECRET-MARKER") {
		t.Error("raw model output leaked to the client")
	}
	if !strings.Contains(w.Body.String(), "try again") {
		t.Errorf("expected retry message, got %s", w.Body)
	}
}

func TestPublishErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "authentication",
			err:        &errs.AuthenticationError{Msg: "gh is not authenticated", Remedy: "gh auth login"},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "gh auth login",
		},
		{
			name:       "configuration",
			err:        &errs.ConfigurationError{Msg: "remote publishing requires token-based GitHub API access"},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "token-based",
		},
		{
			name:       "unexpected",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestServer(summaryJSON, draftJSON, &fakePublisher{err: tt.err}, nil).Engine()

			w := doJSON(t, engine, http.MethodPost, "/api/publish", map[string]any{
				"company_name": "Acme",
				"jd_summary":   json.RawMessage(summaryJSON),
				"email_draft":  json.RawMessage(draftJSON),
				"resume":       "resume",
			})
			if w.Code != tt.wantStatus {
				t.Fatalf("status %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %s, want substring %q", w.Body, tt.wantBody)
			}
			if tt.name == "unexpected" && strings.Contains(w.Body.String(), "disk on fire") {
				t.Error("internal error detail leaked to the client")
			}
		})
	}
}

func TestWizardFlowOverHTTP(t *testing.T) {
	engine := newTestServer(summaryJSON, draftJSON, nil, nil).Engine()

	w := doJSON(t, engine, http.MethodPost, "/api/wizard", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: %d", w.Code)
	}
	var view wizard.View
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Step != wizard.StepJobDescription {
		t.Fatalf("new session step %d", view.Step)
	}
	id := view.ID

	w = doJSON(t, engine, http.MethodPost, "/api/wizard/"+id+"/step/summarize", map[string]string{
		"job_description": "jd text",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("summarize step: %d: %s", w.Code, w.Body)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/wizard/"+id+"/resume", map[string]string{
		"resume": "my resume",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("resume step: %d: %s", w.Code, w.Body)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/wizard/"+id+"/samples", map[string]string{
		"title": "Memo", "content": "one two",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add sample: %d: %s", w.Code, w.Body)
	}
	var sample agents.WritingSample
	if err := json.Unmarshal(w.Body.Bytes(), &sample); err != nil {
		t.Fatal(err)
	}
	if sample.ID != "sample-1" || sample.WordCount != 2 {
		t.Errorf("sample: %+v", sample)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/wizard/"+id+"/step/draft", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("draft step: %d: %s", w.Code, w.Body)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/wizard/"+id+"/step/publish", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("publish step: %d: %s", w.Code, w.Body)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Step != wizard.StepDone {
		t.Errorf("final step %d", view.Step)
	}
	if view.Result == nil || view.Result.PRURL != "https://github.com/u/r/pull/1" {
		t.Errorf("result: %+v", view.Result)
	}

	w = doJSON(t, engine, http.MethodDelete, "/api/wizard/"+id, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete session: %d", w.Code)
	}
	w = doJSON(t, engine, http.MethodGet, "/api/wizard/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("deleted session fetch: %d", w.Code)
	}
}

func TestUnknownSession(t *testing.T) {
	engine := newTestServer(summaryJSON, draftJSON, nil, nil).Engine()
	w := doJSON(t, engine, http.MethodGet, "/api/wizard/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status %d", w.Code)
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ":8080"},
		{":9090", ":9090"},
		{"9090", ":9090"},
		{"127.0.0.1:8080", "127.0.0.1:8080"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			if got := Addr(tt.in); got != tt.want {
				t.Errorf("Addr(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
