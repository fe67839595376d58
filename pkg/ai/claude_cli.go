package ai

import (
	"context"
	"os/exec"
)

// ClaudeCLI runs prompts through a locally-installed claude binary.
// No API key handling here; the CLI carries its own authentication.
type ClaudeCLI struct {
	model string // sub-agent suffix, e.g. "sonnet-4-5"
}

// NewClaudeCLI creates a subprocess agent. An empty model uses the
// CLI's configured default.
func NewClaudeCLI(model string) *ClaudeCLI {
	return &ClaudeCLI{model: model}
}

// IsClaudeCLIAvailable reports whether the claude binary is on PATH.
func IsClaudeCLIAvailable() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}

// GenerateContent invokes the CLI in one-shot print mode and returns
// its stdout verbatim.
func (c *ClaudeCLI) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := []string{"-p", prompt, "--output-format", "text"}
	if c.model != "" {
		args = append(args, "--model", "claude-"+c.model)
	}
	cmd := exec.CommandContext(ctx, "claude", args...)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// Close is a no-op; each call spawns its own process.
func (c *ClaudeCLI) Close() {}
