package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BatchConfig holds per-run settings for the batch command, read from a YAML
// file. Fields mirror the command's flags; empty fields mean "not set" and
// the flag default applies. Timeout is a time.ParseDuration string.
type BatchConfig struct {
	Glob      string `yaml:"glob"`
	Format    string `yaml:"format"`
	Strategy  string `yaml:"strategy"`
	Timeout   string `yaml:"timeout"`
	OutputDir string `yaml:"output_dir"`
	Report    string `yaml:"report"`
}

// LoadBatch reads and decodes a batch config file.
func LoadBatch(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch config: %w", err)
	}
	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse batch config: %w", err)
	}
	return &cfg, nil
}
