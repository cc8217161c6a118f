// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/user/rendervid/pkg/orchestrator"
	"github.com/user/rendervid/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for rendervid.
// Encoding parameters are fixed and deliberately absent.
type Config struct {
	// Input/Output
	RootDir   string `yaml:"root_dir"`
	OutputDir string `yaml:"output_dir"`

	// Encoder
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Runtime
	Lock     bool   `yaml:"lock"`
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	defaults := orchestrator.DefaultConfig()
	return Config{
		RootDir:    defaults.RootDir,
		OutputDir:  defaults.OutputDir,
		FFmpegPath: "ffmpeg",
		Lock:       true,
		LogLevel:   ports.LevelInfo.String(),
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
// Unknown keys are rejected; an empty file keeps the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that required values are present.
func (c Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("root_dir must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(fps int) orchestrator.Config {
	return orchestrator.Config{
		RootDir:   c.RootDir,
		OutputDir: c.OutputDir,
		FPS:       fps,
	}
}
