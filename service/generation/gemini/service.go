// Package gemini implements the generation backend on Google's Gemini API.
package gemini

import (
	"context"
	"fmt"

	"github.com/viant/qgen/service/generation"
	"github.com/viant/scy"
	"google.golang.org/genai"
)

// Config controls the Gemini client. The API key can be supplied directly or
// resolved from a scy secret resource.
type Config struct {
	Model             string  `json:"model,omitempty" yaml:"model,omitempty"`
	Temperature       float64 `json:"temperature" yaml:"temperature"`
	MaxOutputTokens   int32   `json:"maxOutputTokens,omitempty" yaml:"maxOutputTokens,omitempty"`
	SystemInstruction string  `json:"systemInstruction,omitempty" yaml:"systemInstruction,omitempty"`

	// APIKey holds the key verbatim; prefer SecretURL outside of tests.
	APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	// SecretURL points at a scy secret resource holding the key.
	SecretURL string `json:"secretURL,omitempty" yaml:"secretURL,omitempty"`
	// SecretKey optionally names the encryption key, e.g. "blowfish://default".
	SecretKey string `json:"secretKey,omitempty" yaml:"secretKey,omitempty"`
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() Config {
	return Config{
		Model:           "gemini-2.0-flash",
		Temperature:     0,
		MaxOutputTokens: 10000,
	}
}

// Service generates text through the Gemini API.
type Service struct {
	config Config
	client *genai.Client
}

var _ generation.Service = (*Service)(nil)

// New creates a Gemini-backed generation service, resolving the API key from
// the configured scy secret when not supplied verbatim.
func New(ctx context.Context, config Config) (*Service, error) {
	if config.Model == "" {
		config.Model = DefaultConfig().Model
	}
	apiKey := config.APIKey
	if apiKey == "" && config.SecretURL != "" {
		secrets := scy.New()
		secret, err := secrets.Load(ctx, scy.NewResource(nil, config.SecretURL, config.SecretKey))
		if err != nil {
			return nil, fmt.Errorf("failed to load gemini API key from %v: %w", config.SecretURL, err)
		}
		apiKey = secret.String()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Service{config: config, client: client}, nil
}

// Generate implements generation.Service.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(s.config.Temperature)),
	}
	if s.config.MaxOutputTokens > 0 {
		config.MaxOutputTokens = s.config.MaxOutputTokens
	}
	if s.config.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(s.config.SystemInstruction, genai.RoleUser)
	}
	response, err := s.client.Models.GenerateContent(ctx, s.config.Model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return response.Text(), nil
}
