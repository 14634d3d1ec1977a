// Package config handles loading and saving user configuration for protsite.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/f3rmion/protsite/internal/report"
	"github.com/f3rmion/protsite/internal/rules"
	"gopkg.in/yaml.v3"
)

// File names inside the config directory.
const (
	SettingsFile = "config.yaml"
	RulesFile    = "rules.yaml"
)

// Settings holds the display settings read from config.yaml, env or flags.
type Settings struct {
	ColorPolicy string `yaml:"color_policy" mapstructure:"color_policy"` // per-rule or category
	GroupSize   int    `yaml:"group_size" mapstructure:"group_size"`     // Residues per group, 0 disables
	LineWidth   int    `yaml:"line_width" mapstructure:"line_width"`     // Residues per rendered line
	RulesFile   string `yaml:"rules_file,omitempty" mapstructure:"rules_file"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ColorPolicy: string(rules.PolicyPerRule),
		GroupSize:   report.DefaultGroupSize,
		LineWidth:   report.DefaultLineWidth,
	}
}

// LoadRules loads rule tables from a YAML file. Missing palette colors fall
// back to the built-in palette.
func LoadRules(path string) (*rules.Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var t rules.Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	t.Normalize()
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validating rules file %s: %w", path, err)
	}

	return &t, nil
}

// WriteRules encodes rule tables as YAML to w.
func WriteRules(w io.Writer, t *rules.Tables) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	return enc.Close()
}

// SaveRules saves rule tables to a YAML file.
func SaveRules(path string, t *rules.Tables) error {
	out, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing rules file: %w", err)
	}

	return nil
}

// SaveSettings saves settings to a YAML file.
func SaveSettings(path string, s Settings) error {
	out, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}

// ResolveTables returns the tables to use: the rules file when one is set,
// otherwise the built-in tables. The color policy from s is applied.
func ResolveTables(s Settings) (*rules.Tables, error) {
	policy, err := rules.ParsePolicy(s.ColorPolicy)
	if err != nil {
		return nil, err
	}

	t := rules.Default()
	if s.RulesFile != "" {
		t, err = LoadRules(s.RulesFile)
		if err != nil {
			return nil, err
		}
	}
	t.Policy = policy
	return t, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "protsite"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "protsite"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
