package config

import (
	"fmt"
	"net/url"
)

// ValidateConfig checks that the loaded configuration has valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := validateOllamaConfig(&cfg.Ollama); err != nil {
		return fmt.Errorf("YAML global config: ollama directive is invalid: %w", err)
	}
	if err := validateHTTPConfig(&cfg.HTTPClient); err != nil {
		return fmt.Errorf("YAML global config: http_client directive is invalid: %w", err)
	}
	return nil
}

func validateOllamaConfig(cfg *Ollama) error {
	if cfg == nil {
		return fmt.Errorf("ollama configuration is nil")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not a valid URL", cfg.BaseURL)
	}
	if cfg.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if cfg.Temperature != nil && (*cfg.Temperature < 0 || *cfg.Temperature > 2) {
		return fmt.Errorf("temperature must be between 0 and 2: %v", *cfg.Temperature)
	}
	if cfg.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive: %d", cfg.MaxTokens)
	}
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive: %d", cfg.TimeoutSeconds)
	}
	return nil
}

func validateHTTPConfig(cfg *HTTPClient) error {
	if cfg == nil {
		return fmt.Errorf("HTTP configuration is nil")
	}
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive: %d", cfg.TimeoutSeconds)
	}
	return nil
}
