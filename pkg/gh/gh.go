// Package gh provides an interface for GitHub CLI operations.
package gh

import (
	"fmt"
	"os/exec"
	"strings"
)

// CLI defines the interface for GitHub CLI operations.
type CLI interface {
	// AuthStatus verifies the gh CLI is authenticated.
	AuthStatus() error
	// RepoURL returns the browse URL of the repository at dir.
	RepoURL(dir string) (string, error)
	// PRCreate opens a pull request from the current branch and
	// returns the pull request URL.
	PRCreate(dir, title, body, base string) (string, error)
}

// DefaultCLI implements CLI using the gh command.
type DefaultCLI struct{}

// New returns a new DefaultCLI instance.
func New() *DefaultCLI {
	return &DefaultCLI{}
}

// AuthStatus verifies the gh CLI is authenticated.
func (c *DefaultCLI) AuthStatus() error {
	cmd := exec.Command("gh", "auth", "status")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gh auth status failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// RepoURL returns the browse URL of the repository at dir.
func (c *DefaultCLI) RepoURL(dir string) (string, error) {
	cmd := exec.Command("gh", "repo", "view", "--json", "url", "-q", ".url")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("gh repo view failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// PRCreate opens a pull request from the current branch.
func (c *DefaultCLI) PRCreate(dir, title, body, base string) (string, error) {
	cmd := exec.Command("gh", "pr", "create", "--title", title, "--body", body, "--base", base)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("gh pr create failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
