package ai

import (
	"strings"
	"testing"
)

func TestIsModelSupported(t *testing.T) {
	tests := []struct {
		model    string
		expected bool
	}{
		{"gemini-2.5-flash", true},
		{"gemini-2.5-pro", true},
		{"claude-sonnet-4", true},
		{"claude-opus-4", true},
		{"invalid-model", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got := IsModelSupported(tt.model)
			if got != tt.expected {
				t.Errorf("IsModelSupported(%q) = %v, want %v", tt.model, got, tt.expected)
			}
		})
	}
}

func TestSupportedAgents(t *testing.T) {
	agents := SupportedAgents()

	if len(agents) == 0 {
		t.Error("SupportedAgents() returned empty list")
	}

	hasClaude := false
	for _, a := range agents {
		if strings.HasPrefix(a, "claude-") {
			hasClaude = true
			break
		}
	}
	if !hasClaude {
		t.Error("SupportedAgents() should include Claude models")
	}
}

func TestDefaultAgent(t *testing.T) {
	agent := DefaultAgent()

	if agent == "" {
		t.Error("DefaultAgent() returned empty string")
	}
	if !IsAgentSupported(agent) {
		t.Errorf("DefaultAgent() returned unsupported agent: %s", agent)
	}
}

func TestSubAgent(t *testing.T) {
	tests := []struct {
		agent string
		want  string
	}{
		{"claude-code:sonnet-4-5", "sonnet-4-5"},
		{"gemini-cli:flash", "flash"},
		{"claude-code", ""},
	}

	for _, tt := range tests {
		if got := subAgent(tt.agent); got != tt.want {
			t.Errorf("subAgent(%q) = %q, want %q", tt.agent, got, tt.want)
		}
	}
}

func TestNewClientUnknownAgent(t *testing.T) {
	_, err := NewClient("gpt-4o")
	if err == nil {
		t.Error("expected error for unknown agent")
	}
}
