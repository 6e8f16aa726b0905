package qgen

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/qgen/service/generation/gemini"
	"github.com/viant/qgen/service/prompt"
)

// Config is a serialisable representation of the service configuration. It
// can be populated from YAML or JSON; the zero-value is useful - all nested
// fields inherit their package defaults.
type Config struct {
	Gemini   gemini.Config  `json:"gemini" yaml:"gemini"`
	Artifact ArtifactConfig `json:"artifact" yaml:"artifact"`
}

// ArtifactConfig controls where branch artifacts are persisted. An empty
// BaseURL keeps artifacts in memory.
type ArtifactConfig struct {
	BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to New.
func DefaultConfig() *Config {
	ret := &Config{
		Gemini: gemini.DefaultConfig(),
	}
	ret.Gemini.SystemInstruction = prompt.AuthoringGuidelines
	return ret
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Gemini.Temperature < 0 {
		return fmt.Errorf("gemini.temperature must not be negative")
	}
	if c.Gemini.MaxOutputTokens < 0 {
		return fmt.Errorf("gemini.maxOutputTokens must not be negative")
	}
	return nil
}

// LoadConfig reads a YAML configuration from the supplied URL (file path,
// s3://, gs:// and the other schemes the storage layer understands),
// overlaying the defaults.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
