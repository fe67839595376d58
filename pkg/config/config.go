// Package config reads and writes the applykit configuration file.
// Settings resolve in order: explicit Set, environment (APPLYKIT_*),
// config file, defaults.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Agent          string `mapstructure:"agent" yaml:"agent,omitempty"`
	PublishMode    string `mapstructure:"publish_mode" yaml:"publish_mode,omitempty"`
	RepoRoot       string `mapstructure:"repo_root" yaml:"repo_root,omitempty"`
	SubmissionsDir string `mapstructure:"submissions_dir" yaml:"submissions_dir,omitempty"`
	BaseBranch     string `mapstructure:"base_branch" yaml:"base_branch,omitempty"`
	Remote         string `mapstructure:"remote" yaml:"remote,omitempty"`
	ServerAddr     string `mapstructure:"server_addr" yaml:"server_addr,omitempty"`
}

var (
	configFile = ".applykit.yaml"
	v          *viper.Viper
)

func init() {
	v = viper.New()
	v.SetConfigFile(configFile)
	setDefaults(v)

	v.SetEnvPrefix("APPLYKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Missing config file is fine, defaults apply
	_ = v.ReadInConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("agent", "claude-code")
	v.SetDefault("publish_mode", "local")
	v.SetDefault("repo_root", ".")
	v.SetDefault("submissions_dir", "submissions")
	v.SetDefault("base_branch", "main")
	v.SetDefault("remote", "origin")
	v.SetDefault("server_addr", ":8080")
}

func Path() string {
	return configFile
}

func Load() (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

var keys = []string{"agent", "publish_mode", "repo_root", "submissions_dir", "base_branch", "remote", "server_addr"}

func validKey(key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func Get(key string) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return v.GetString(key), nil
}

func Set(key, value string) error {
	if !validKey(key) {
		return fmt.Errorf("unknown config key: %s (valid: %s)", key, strings.Join(keys, ", "))
	}

	v.Set(key, value)
	cfg, err := Load()
	if err != nil {
		return err
	}
	return writeConfig(cfg)
}

func All() map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = v.GetString(k)
	}
	return out
}

// Save writes the full config back to the config file.
func Save(c *Config) error {
	return writeConfig(c)
}

func writeConfig(cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(configFile, buf.Bytes(), 0644)
}

// ResetForTest resets viper for testing (only use in tests)
func ResetForTest(testPath string) {
	configFile = testPath + "/.applykit.yaml"
	v = viper.New()
	v.SetConfigFile(configFile)
	setDefaults(v)
	_ = v.ReadInConfig()
}
