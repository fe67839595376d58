// Package ai selects a model provider for the wizard agents.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/xrsl/applykit/pkg/claude"
	"github.com/xrsl/applykit/pkg/gemini"
)

// Client is the common interface for AI providers.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Close()
}

// CachingClient supports a separate system prompt (optional interface).
type CachingClient interface {
	Client
	GenerateContentWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// DefaultAgent returns the best available agent.
// Prefers claude-code, then gemini-cli, then API agents.
func DefaultAgent() string {
	if IsClaudeCLIAvailable() {
		return "claude-code"
	}
	if IsGeminiCLIAvailable() {
		return "gemini-cli"
	}
	return gemini.DefaultModel
}

// NewClient creates an AI client based on agent prefix.
func NewClient(agent string) (Client, error) {
	switch {
	case agent == "claude-code" || strings.HasPrefix(agent, "claude-code:"):
		if !IsClaudeCLIAvailable() {
			return nil, fmt.Errorf("claude CLI not found in PATH")
		}
		return NewClaudeCLI(subAgent(agent)), nil
	case agent == "gemini-cli" || strings.HasPrefix(agent, "gemini-cli:"):
		if !IsGeminiCLIAvailable() {
			return nil, fmt.Errorf("gemini CLI not found in PATH")
		}
		return NewGeminiCLI(subAgent(agent)), nil
	case strings.HasPrefix(agent, "gemini-"):
		return gemini.NewClient(agent)
	case strings.HasPrefix(agent, "claude-"):
		return claude.NewClient(agent)
	default:
		return nil, fmt.Errorf("unknown agent: %s (use claude-code, gemini-cli, gemini-*, or claude-*)", agent)
	}
}

// subAgent parses "claude-code:sonnet-4-5" into "sonnet-4-5".
func subAgent(agent string) string {
	if idx := strings.Index(agent, ":"); idx != -1 {
		return agent[idx+1:]
	}
	return ""
}

// IsAgentSupported checks if an agent is supported by any provider.
func IsAgentSupported(agent string) bool {
	switch {
	case agent == "claude-code" || strings.HasPrefix(agent, "claude-code:"):
		return IsClaudeCLIAvailable()
	case agent == "gemini-cli" || strings.HasPrefix(agent, "gemini-cli:"):
		return IsGeminiCLIAvailable()
	case strings.HasPrefix(agent, "gemini-"):
		return gemini.IsModelSupported(agent)
	case strings.HasPrefix(agent, "claude-"):
		return claude.IsModelSupported(agent)
	default:
		return false
	}
}

// IsModelSupported checks if an API model is supported.
func IsModelSupported(model string) bool {
	switch {
	case strings.HasPrefix(model, "gemini-"):
		return gemini.IsModelSupported(model)
	case strings.HasPrefix(model, "claude-"):
		return claude.IsModelSupported(model)
	default:
		return false
	}
}

// SupportedAgents returns all supported agents (CLI + API).
func SupportedAgents() []string {
	agents := []string{}
	if IsClaudeCLIAvailable() {
		agents = append(agents, "claude-code")
	}
	if IsGeminiCLIAvailable() {
		agents = append(agents, "gemini-cli")
	}
	agents = append(agents, claude.SupportedModels...)
	agents = append(agents, gemini.SupportedModels...)
	return agents
}
