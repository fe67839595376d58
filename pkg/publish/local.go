package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/xrsl/applykit/pkg/errs"
	"github.com/xrsl/applykit/pkg/gh"
	"github.com/xrsl/applykit/pkg/git"
	clog "github.com/xrsl/applykit/pkg/log"
)

// LocalCLIPublisher publishes through the locally-authenticated git
// and gh CLIs.
type LocalCLIPublisher struct {
	git  git.CLI
	gh   gh.CLI
	opts Options

	// Injection points for tests.
	now       func() time.Time
	writeFile func(name string, data []byte) error
}

// NewLocalCLI creates a publisher backed by the given CLI wrappers.
func NewLocalCLI(g git.CLI, h gh.CLI, opts Options) *LocalCLIPublisher {
	return &LocalCLIPublisher{
		git:       g,
		gh:        h,
		opts:      opts.withDefaults(),
		now:       time.Now,
		writeFile: func(name string, data []byte) error { return os.WriteFile(name, data, 0o644) },
	}
}

// Publish materializes the four artifacts and attempts the branch +
// pull request sequence.
//
// Preflight and materialization failures are returned as errors. A
// failure in the version-control sequence is downgraded to a degraded
// result: the files are on disk and the model work must not be
// discarded over a push hiccup. NoChangesError is the one exception,
// since an empty staged diff means the artifacts were not new.
func (p *LocalCLIPublisher) Publish(ctx context.Context, req Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Preflight: no side effects before this passes.
	if err := p.gh.AuthStatus(); err != nil {
		clog.Debug("gh auth check failed", "error", err)
		return nil, &errs.AuthenticationError{
			Msg:    "GitHub CLI not authenticated",
			Remedy: "gh auth login",
		}
	}

	now := p.now()
	slug := Slugify(req.CompanyName)
	if slug == "" {
		return nil, errs.Validation("company_name", "contains no usable characters")
	}
	ts := Timestamp(now)

	files, err := p.materialize(req, slug, ts, now)
	if err != nil {
		return nil, err
	}

	result, err := p.pushBranch(req, slug, ts, files)
	if err != nil {
		var noChanges *errs.NoChangesError
		if errors.As(err, &noChanges) {
			p.restoreBase()
			return nil, err
		}
		clog.Warn("version-control publish failed, keeping local artifacts",
			"company", req.CompanyName, "error", err)
		p.restoreBase()
		return &Result{
			RepoURL:      LocalRepoURL,
			PRURL:        LocalPRURL,
			CommitSHA:    LocalCommitSHA,
			FilesCreated: files,
		}, nil
	}

	return result, nil
}

// materialize writes the four artifacts. All writes succeed or the
// whole submission directory is removed and an IOError returned; no
// partial artifacts survive a failed attempt.
func (p *LocalCLIPublisher) materialize(req Request, slug, ts string, now time.Time) ([]string, error) {
	relDir := path.Join(p.opts.SubmissionsDir, slug, ts)
	absDir := filepath.Join(p.opts.RepoRoot, p.opts.SubmissionsDir, slug, ts)

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, &errs.IOError{Path: absDir, Err: err}
	}

	artifacts := []struct {
		name    string
		content string
	}{
		{summaryFile, renderSummary(req.CompanyName, req.Summary, now)},
		{emailFile, renderEmail(req.CompanyName, req.Draft, now)},
		{resumeFile, req.Resume}, // byte-for-byte
		{readmeFile, renderReadme(req.CompanyName, now)},
	}

	files := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := p.writeFile(filepath.Join(absDir, a.name), []byte(a.content)); err != nil {
			if rmErr := os.RemoveAll(absDir); rmErr != nil {
				clog.Warn("failed to remove partial submission dir", "dir", absDir, "error", rmErr)
			}
			// Prune the slug directory too when this attempt created
			// it; Remove refuses non-empty dirs from earlier runs.
			_ = os.Remove(filepath.Dir(absDir))
			return nil, &errs.IOError{Path: path.Join(relDir, a.name), Err: err}
		}
		files = append(files, path.Join(relDir, a.name))
	}

	clog.Info("materialized application artifacts", "dir", relDir, "files", len(files))
	return files, nil
}

// pushBranch runs the best-effort version-control sequence.
func (p *LocalCLIPublisher) pushBranch(req Request, slug, ts string, files []string) (*Result, error) {
	dir := p.opts.RepoRoot
	relDir := path.Join(p.opts.SubmissionsDir, slug, ts)

	repoURL, err := p.gh.RepoURL(dir)
	if err != nil {
		return nil, fmt.Errorf("repo view: %w", err)
	}

	branch := fmt.Sprintf("submit/%s-%s", slug, ts)
	if err := p.git.CheckoutNew(dir, branch); err != nil {
		return nil, fmt.Errorf("checkout -b %s: %w", branch, err)
	}

	// Force-add: the submissions root may be gitignored.
	if err := p.git.AddForce(dir, relDir); err != nil {
		return nil, fmt.Errorf("add -f %s: %w", relDir, err)
	}

	status, err := p.git.StatusPorcelain(dir, relDir)
	if err != nil {
		return nil, fmt.Errorf("status %s: %w", relDir, err)
	}
	if strings.TrimSpace(status) == "" {
		// Should be unreachable given second-precision timestamps;
		// kept as a defensive check.
		return nil, &errs.NoChangesError{Dir: relDir}
	}

	if err := p.git.Commit(dir, commitMessage(req.CompanyName)); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	if err := p.git.Push(dir, p.opts.Remote, branch); err != nil {
		return nil, fmt.Errorf("push %s %s: %w", p.opts.Remote, branch, err)
	}

	prURL, err := p.gh.PRCreate(dir, "Application: "+req.CompanyName, prBody(req.CompanyName, files), p.opts.BaseBranch)
	if err != nil {
		return nil, fmt.Errorf("pr create: %w", err)
	}

	sha, err := p.git.HeadSHA(dir)
	if err != nil {
		return nil, fmt.Errorf("rev-parse HEAD: %w", err)
	}
	if len(sha) > 7 {
		sha = sha[:7]
	}

	// Leave the work tree clean for the next run.
	if err := p.git.Checkout(dir, p.opts.BaseBranch); err != nil {
		return nil, fmt.Errorf("checkout %s: %w", p.opts.BaseBranch, err)
	}

	clog.Info("published application", "branch", branch, "pr", prURL)
	return &Result{
		RepoURL:      repoURL,
		PRURL:        prURL,
		CommitSHA:    sha,
		FilesCreated: files,
	}, nil
}

// restoreBase switches back to the primary branch, best effort.
func (p *LocalCLIPublisher) restoreBase() {
	if err := p.git.Checkout(p.opts.RepoRoot, p.opts.BaseBranch); err != nil {
		clog.Warn("failed to restore base branch", "branch", p.opts.BaseBranch, "error", err)
	}
}
