// Package git provides an interface for git CLI operations.
//
// Every call takes an explicit repository directory instead of relying
// on the process working directory, so concurrent callers never race on
// ambient chdir state. The work tree itself is still a single shared
// resource: two publishers against the same checkout will race on the
// branch pointer.
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// CLI defines the interface for git operations used by the publisher.
type CLI interface {
	// RemoteURL returns the fetch URL of the given remote.
	RemoteURL(dir, remote string) (string, error)
	// CheckoutNew creates and switches to a new branch.
	CheckoutNew(dir, branch string) error
	// Checkout switches to an existing branch.
	Checkout(dir, branch string) error
	// AddForce stages a path even if it is gitignored.
	AddForce(dir, path string) error
	// StatusPorcelain returns porcelain status output scoped to path.
	StatusPorcelain(dir, path string) (string, error)
	// Commit records staged changes with the given message.
	Commit(dir, message string) error
	// Push pushes a branch to the given remote.
	Push(dir, remote, branch string) error
	// HeadSHA returns the full SHA of HEAD.
	HeadSHA(dir string) (string, error)
}

// DefaultCLI implements CLI using the git command.
type DefaultCLI struct{}

// New returns a new DefaultCLI instance.
func New() *DefaultCLI {
	return &DefaultCLI{}
}

// run executes git with args in dir, folding stderr into the error.
func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// RemoteURL returns the fetch URL of the given remote.
func (c *DefaultCLI) RemoteURL(dir, remote string) (string, error) {
	out, err := run(dir, "remote", "get-url", remote)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CheckoutNew creates and switches to a new branch.
func (c *DefaultCLI) CheckoutNew(dir, branch string) error {
	_, err := run(dir, "checkout", "-b", branch)
	return err
}

// Checkout switches to an existing branch.
func (c *DefaultCLI) Checkout(dir, branch string) error {
	_, err := run(dir, "checkout", branch)
	return err
}

// AddForce stages a path even if it is gitignored.
func (c *DefaultCLI) AddForce(dir, path string) error {
	_, err := run(dir, "add", "-f", path)
	return err
}

// StatusPorcelain returns porcelain status output scoped to path.
func (c *DefaultCLI) StatusPorcelain(dir, path string) (string, error) {
	return run(dir, "status", "--porcelain", path)
}

// Commit records staged changes with the given message.
func (c *DefaultCLI) Commit(dir, message string) error {
	_, err := run(dir, "commit", "-m", message)
	return err
}

// Push pushes a branch to the given remote.
func (c *DefaultCLI) Push(dir, remote, branch string) error {
	_, err := run(dir, "push", remote, branch)
	return err
}

// HeadSHA returns the full SHA of HEAD.
func (c *DefaultCLI) HeadSHA(dir string) (string, error) {
	out, err := run(dir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
