// Package config provides hierarchical configuration management for changelogup
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.changelogup/config.yml) > user config
// (~/.config/changelogup/config.yml) > defaults. CLI flags are applied on top
// by the cli package. The resolved Configuration is validated once and treated
// as immutable for the rest of the run.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the resolved inputs governing one changelogup run.
type Configuration struct {
	// Token is the GitHub personal access token used for bearer authentication.
	// Required. Can be set via CHANGELOGUP_TOKEN or GITHUB_TOKEN env vars.
	Token string `koanf:"token" validate:"required"`

	// Repository is the target repository in owner/repo form. Required, but
	// may be auto-detected from the local git remote by the cli layer before
	// validation runs.
	Repository string `koanf:"repository" validate:"required"`

	// Output is the path the rendered changelog is written to.
	Output string `koanf:"output" validate:"required"`

	// Branch optionally restricts the commit listing to a branch, tag, or SHA.
	// Empty means the repository's default branch.
	Branch string `koanf:"branch"`

	// PerPage is the page size used for commit listing requests.
	PerPage int `koanf:"per_page" validate:"min=1,max=100"`

	// MaxCommits caps the number of commits fetched. 0 means no cap.
	MaxCommits int `koanf:"max_commits" validate:"min=0"`

	// Categorize groups entries into conventional-commit sections
	// (features, fixes, docs, ...) instead of a flat dated list.
	Categorize bool `koanf:"categorize"`

	// Timeout is the per-run request timeout in seconds. 0 disables it.
	Timeout int `koanf:"timeout" validate:"min=0"`
}

// Load loads configuration from user config, project config, and environment.
// An empty projectConfigPath uses the default .changelogup/config.yml.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	userPath, _ := UserConfigPath()
	if err := loadFileConfig(k, userPath, "user"); err != nil {
		return nil, err
	}

	projectPath := ProjectConfigPath()
	if projectConfigPath != "" {
		projectPath = projectConfigPath
	}
	if err := loadFileConfig(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// GITHUB_TOKEN is the conventional variable in CI environments; honor it
	// when no changelogup-specific token is configured.
	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadFileConfig validates and loads a YAML config file if it exists.
// A legacy JSON file at the same path minus the extension is also honored.
func loadFileConfig(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		if legacy := legacyJSONPath(path); fileExists(legacy) {
			if err := k.Load(file.Provider(legacy), json.Parser()); err != nil {
				return fmt.Errorf("failed to load legacy %s config %s: %w", configType, legacy, err)
			}
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("CHANGELOGUP_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: CHANGELOGUP_MAX_COMMITS -> max_commits
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CHANGELOGUP_"))
}

// legacyJSONPath maps a .yml config path to its pre-YAML .json location.
func legacyJSONPath(path string) string {
	if strings.HasSuffix(path, ".yml") {
		return strings.TrimSuffix(path, ".yml") + ".json"
	}
	return ""
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
