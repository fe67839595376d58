package cmd

import (
	"fmt"

	"github.com/xrsl/applykit/pkg/agents"
	"github.com/xrsl/applykit/pkg/ai"
	"github.com/xrsl/applykit/pkg/config"
	"github.com/xrsl/applykit/pkg/gh"
	"github.com/xrsl/applykit/pkg/git"
	"github.com/xrsl/applykit/pkg/publish"
	"github.com/xrsl/applykit/pkg/wizard"
)

var agentFlag string

// resolveAgent picks the agent: flag, then config, then autodetect.
func resolveAgent(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg, err := config.Load(); err == nil && cfg.Agent != "" {
		return cfg.Agent
	}
	return ai.DefaultAgent()
}

// newClient builds the model client for the chosen agent.
func newClient(agentFlag string) (ai.Client, string, error) {
	agent := resolveAgent(agentFlag)
	client, err := ai.NewClient(agent)
	if err != nil {
		return nil, "", fmt.Errorf("agent %q: %w", agent, err)
	}
	return client, agent, nil
}

// newPublisher builds the publisher from config.
func newPublisher() (publish.Publisher, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return publish.New(cfg.PublishMode, git.New(), gh.New(), publish.Options{
		RepoRoot:       cfg.RepoRoot,
		SubmissionsDir: cfg.SubmissionsDir,
		BaseBranch:     cfg.BaseBranch,
		Remote:         cfg.Remote,
	})
}

// newController wires the full pipeline for one model client.
func newController(client ai.Client) (*wizard.Controller, error) {
	pub, err := newPublisher()
	if err != nil {
		return nil, err
	}
	return wizard.NewController(
		agents.NewSummarizer(client),
		agents.NewDrafter(client),
		pub,
	), nil
}
