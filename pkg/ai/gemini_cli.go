package ai

import (
	"context"
	"os/exec"
)

// GeminiCLI runs prompts through a locally-installed gemini binary,
// mirroring ClaudeCLI for the Google toolchain.
type GeminiCLI struct {
	model string // sub-agent suffix, e.g. "flash"
}

// NewGeminiCLI creates a subprocess agent. An empty model uses the
// CLI's configured default.
func NewGeminiCLI(model string) *GeminiCLI {
	return &GeminiCLI{model: model}
}

// IsGeminiCLIAvailable reports whether the gemini binary is on PATH.
func IsGeminiCLIAvailable() bool {
	_, err := exec.LookPath("gemini")
	return err == nil
}

// GenerateContent invokes the CLI in one-shot print mode and returns
// its stdout verbatim.
func (c *GeminiCLI) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := []string{"-p", prompt, "-o", "text"}
	if c.model != "" {
		args = append(args, "--model", c.model)
	}
	cmd := exec.CommandContext(ctx, "gemini", args...)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// Close is a no-op; each call spawns its own process.
func (c *GeminiCLI) Close() {}
