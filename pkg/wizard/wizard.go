// Package wizard holds per-session state for the five-step application
// flow and gates stage transitions on successful completion.
//
// State is process-local and never persisted: a session is created when
// the client starts the wizard and discarded when it navigates away.
package wizard

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/xrsl/applykit/pkg/agents"
	"github.com/xrsl/applykit/pkg/errs"
	"github.com/xrsl/applykit/pkg/publish"
)

// Wizard steps. A step only advances when its action succeeds.
const (
	StepJobDescription = 1
	StepResume         = 2
	StepSamples        = 3
	StepReview         = 4
	StepDone           = 5
)

// Session is one user's wizard state.
type Session struct {
	mu sync.Mutex

	ID        string
	Step      int
	CreatedAt time.Time

	JobDescription string
	CompanyName    string
	Resume         string
	Samples        []agents.WritingSample
	Summary        *agents.JobSummary
	Draft          *agents.EmailDraft
	Result         *publish.Result

	// LastError is the most recent step failure, for display.
	LastError string

	sampleSeq int
}

// View is a copyable snapshot of a session for serialization.
type View struct {
	ID             string                 `json:"id"`
	Step           int                    `json:"step"`
	JobDescription string                 `json:"job_description,omitempty"`
	CompanyName    string                 `json:"company_name,omitempty"`
	Resume         string                 `json:"resume,omitempty"`
	Samples        []agents.WritingSample `json:"writing_samples"`
	Summary        *agents.JobSummary     `json:"jd_summary,omitempty"`
	Draft          *agents.EmailDraft     `json:"email_draft,omitempty"`
	Result         *publish.Result        `json:"publish_result,omitempty"`
	LastError      string                 `json:"last_error,omitempty"`
}

// Snapshot returns a consistent copy of the session.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	samples := make([]agents.WritingSample, len(s.Samples))
	copy(samples, s.Samples)
	return View{
		ID:             s.ID,
		Step:           s.Step,
		JobDescription: s.JobDescription,
		CompanyName:    s.CompanyName,
		Resume:         s.Resume,
		Samples:        samples,
		Summary:        s.Summary,
		Draft:          s.Draft,
		Result:         s.Result,
		LastError:      s.LastError,
	}
}

// Manager tracks live sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// NewSession creates a session at step 1.
func (m *Manager) NewSession() *Session {
	s := &Session{
		ID:        newSessionID(),
		Step:      StepJobDescription,
		CreatedAt: time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Delete discards a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return hex.EncodeToString(b)
}

// Controller orchestrates the wizard stages over a session. One
// outstanding action per session at a time; each stage's external call
// blocks until the underlying client returns.
type Controller struct {
	Sessions   *Manager
	Summarizer *agents.Summarizer
	Drafter    *agents.Drafter
	Publisher  publish.Publisher
}

// NewController wires the stages to a fresh session manager.
func NewController(s *agents.Summarizer, d *agents.Drafter, p publish.Publisher) *Controller {
	return &Controller{
		Sessions:   NewManager(),
		Summarizer: s,
		Drafter:    d,
		Publisher:  p,
	}
}

func (c *Controller) session(id string) (*Session, error) {
	s := c.Sessions.Get(id)
	if s == nil {
		return nil, errs.Validation("session", "not found")
	}
	return s, nil
}

// SubmitJobDescription runs the Summarizer for step 1 and advances to
// step 2 on success.
func (c *Controller) SubmitJobDescription(ctx context.Context, id, jobDescription string) (*agents.JobSummary, error) {
	s, err := c.session(id)
	if err != nil {
		return nil, err
	}

	summary, err := c.Summarizer.Summarize(ctx, jobDescription)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.LastError = err.Error()
		return nil, err
	}

	s.JobDescription = jobDescription
	s.Summary = summary
	s.CompanyName = summary.CompanyName
	s.LastError = ""
	if s.Step < StepResume {
		s.Step = StepResume
	}
	return summary, nil
}

// SubmitResume stores the resume for step 2 and advances to step 3.
func (c *Controller) SubmitResume(id, resume string) error {
	s, err := c.session(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Step < StepResume {
		s.LastError = "complete the job description step first"
		return errs.Validation("step", s.LastError)
	}
	if strings.TrimSpace(resume) == "" {
		s.LastError = "resume: is required"
		return errs.Validation("resume", "is required")
	}

	s.Resume = resume
	s.LastError = ""
	if s.Step < StepSamples {
		s.Step = StepSamples
	}
	return nil
}

// AddSample appends a writing sample. IDs are generation-order tokens;
// list order is insertion order.
func (c *Controller) AddSample(id, title, content string) (*agents.WritingSample, error) {
	s, err := c.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(title) == "" {
		return nil, errs.Validation("title", "is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errs.Validation("content", "is required")
	}

	s.sampleSeq++
	sample := agents.WritingSample{
		ID:        fmt.Sprintf("sample-%d", s.sampleSeq),
		Title:     title,
		Content:   content,
		WordCount: len(strings.Fields(content)),
	}
	s.Samples = append(s.Samples, sample)
	return &sample, nil
}

// RemoveSample deletes a sample by ID.
func (c *Controller) RemoveSample(id, sampleID string) error {
	s, err := c.session(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sample := range s.Samples {
		if sample.ID == sampleID {
			s.Samples = append(s.Samples[:i], s.Samples[i+1:]...)
			return nil
		}
	}
	return errs.Validation("sample", "not found")
}

// DraftEmail runs the Drafter for step 3/4 and advances to step 4 on
// success.
func (c *Controller) DraftEmail(ctx context.Context, id string) (*agents.EmailDraft, error) {
	s, err := c.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	req := agents.DraftRequest{
		JobDescription: s.JobDescription,
		CompanyName:    s.CompanyName,
		Resume:         s.Resume,
		Summary:        s.Summary,
		Samples:        append([]agents.WritingSample(nil), s.Samples...),
	}
	s.mu.Unlock()

	draft, err := c.Drafter.Draft(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.LastError = err.Error()
		return nil, err
	}

	s.Draft = draft
	s.LastError = ""
	if s.Step < StepReview {
		s.Step = StepReview
	}
	return draft, nil
}

// Publish runs the Publisher for step 5. The session keeps its state on
// failure so the user can retry.
func (c *Controller) Publish(ctx context.Context, id string) (*publish.Result, error) {
	s, err := c.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.Draft == nil || s.Summary == nil {
		s.LastError = "review the draft before publishing"
		s.mu.Unlock()
		return nil, errs.Validation("step", "review the draft before publishing")
	}
	req := publish.Request{
		CompanyName: s.CompanyName,
		Summary:     s.Summary,
		Draft:       s.Draft,
		Resume:      s.Resume,
	}
	s.mu.Unlock()

	result, err := c.Publisher.Publish(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.LastError = err.Error()
		return nil, err
	}

	s.Result = result
	s.LastError = ""
	s.Step = StepDone
	return result, nil
}
