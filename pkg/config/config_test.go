package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	ResetForTest(t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Agent != "claude-code" {
		t.Errorf("Expected default agent 'claude-code', got '%s'", c.Agent)
	}
	if c.PublishMode != "local" {
		t.Errorf("Expected default publish_mode 'local', got '%s'", c.PublishMode)
	}
	if c.BaseBranch != "main" {
		t.Errorf("Expected default base_branch 'main', got '%s'", c.BaseBranch)
	}
	if c.SubmissionsDir != "submissions" {
		t.Errorf("Expected default submissions_dir 'submissions', got '%s'", c.SubmissionsDir)
	}
}

func TestSetAndGet(t *testing.T) {
	dir := t.TempDir()
	ResetForTest(dir)

	if err := Set("agent", "gemini-2.5-flash"); err != nil {
		t.Fatalf("Set agent error: %v", err)
	}
	if err := Set("base_branch", "trunk"); err != nil {
		t.Fatalf("Set base_branch error: %v", err)
	}

	agent, err := Get("agent")
	if err != nil {
		t.Fatalf("Get agent error: %v", err)
	}
	if agent != "gemini-2.5-flash" {
		t.Errorf("Expected agent 'gemini-2.5-flash', got '%s'", agent)
	}

	// Reload from the written file
	ResetForTest(dir)

	branch, err := Get("base_branch")
	if err != nil {
		t.Fatalf("Get base_branch error: %v", err)
	}
	if branch != "trunk" {
		t.Errorf("Expected base_branch 'trunk', got '%s'", branch)
	}
}

func TestSetInvalidKey(t *testing.T) {
	ResetForTest(t.TempDir())

	err := Set("invalid_key", "value")
	if err == nil {
		t.Error("Expected error for invalid key, got nil")
	}
}

func TestGetInvalidKey(t *testing.T) {
	ResetForTest(t.TempDir())

	_, err := Get("invalid_key")
	if err == nil {
		t.Error("Expected error for invalid key, got nil")
	}
}

func TestWrittenFileIsYAML(t *testing.T) {
	dir := t.TempDir()
	ResetForTest(dir)

	if err := Set("remote", "upstream"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatalf("read config file: %v", err)
	}
	if !strings.Contains(string(data), "remote: upstream") {
		t.Errorf("config file missing key, got:\n%s", data)
	}
}

func TestAll(t *testing.T) {
	ResetForTest(t.TempDir())

	all := All()
	for _, k := range keys {
		if _, ok := all[k]; !ok {
			t.Errorf("All() missing key %q", k)
		}
	}
	if all["agent"] != "claude-code" {
		t.Errorf("All()[agent] = %q", all["agent"])
	}
}
