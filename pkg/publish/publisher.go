// Package publish records application materials on disk and pushes
// them through the version-control CLI as a branch plus pull request.
//
// Materialization is the durability boundary: once the four artifacts
// are written, the caller gets a positive result even if the remote
// publish fails. The local git work tree is a single shared resource;
// concurrent publishes against the same checkout are not supported.
package publish

import (
	"context"
	"fmt"

	"github.com/xrsl/applykit/pkg/agents"
	"github.com/xrsl/applykit/pkg/errs"
	"github.com/xrsl/applykit/pkg/gh"
	"github.com/xrsl/applykit/pkg/git"
)

// Sentinel values for the degraded (local-only) result.
const (
	LocalRepoURL   = "local"
	LocalPRURL     = "local-only"
	LocalCommitSHA = "local"
)

// Request carries the materials to publish. Summarize and draft must
// have run first.
type Request struct {
	CompanyName string
	Summary     *agents.JobSummary
	Draft       *agents.EmailDraft
	Resume      string
}

// Result describes what actually happened. A degraded result uses the
// Local* sentinels but still lists the files written to disk.
type Result struct {
	RepoURL      string   `json:"repo_url"`
	PRURL        string   `json:"pr_url"`
	CommitSHA    string   `json:"commit_sha"`
	FilesCreated []string `json:"files_created"`
}

// Degraded reports whether remote publishing was skipped.
func (r *Result) Degraded() bool {
	return r.PRURL == LocalPRURL
}

// Publisher is the publish capability. Two implementations exist:
// LocalCLIPublisher (git + gh CLIs) and RemoteAPIPublisher (stub).
type Publisher interface {
	Publish(ctx context.Context, req Request) (*Result, error)
}

// Options configures a LocalCLIPublisher. Zero values get defaults.
type Options struct {
	RepoRoot       string // repository checkout, default "."
	SubmissionsDir string // relative artifacts root, default "submissions"
	BaseBranch     string // primary branch, default "main"
	Remote         string // push target, default "origin"
}

func (o Options) withDefaults() Options {
	if o.RepoRoot == "" {
		o.RepoRoot = "."
	}
	if o.SubmissionsDir == "" {
		o.SubmissionsDir = "submissions"
	}
	if o.BaseBranch == "" {
		o.BaseBranch = "main"
	}
	if o.Remote == "" {
		o.Remote = "origin"
	}
	return o
}

// New selects a Publisher implementation by mode ("local" or "remote").
func New(mode string, g git.CLI, h gh.CLI, opts Options) (Publisher, error) {
	switch mode {
	case "", "local":
		return NewLocalCLI(g, h, opts), nil
	case "remote":
		return NewRemoteAPI(), nil
	default:
		return nil, fmt.Errorf("unknown publish mode: %q (use local or remote)", mode)
	}
}

func validateRequest(req Request) error {
	if req.CompanyName == "" {
		return errs.Validation("company_name", "is required")
	}
	if req.Summary == nil {
		return errs.Validation("jd_summary", "is required; run summarize first")
	}
	if req.Draft == nil {
		return errs.Validation("email_draft", "is required; run draft first")
	}
	return nil
}
