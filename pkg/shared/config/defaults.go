package config

import "time"

// Defaults mirror the values the tool shipped with; any field left at its
// zero value in config.yml falls back to these.
const (
	DefaultOllamaBaseURL        = "http://localhost:11434"
	DefaultOllamaModel          = "llama3.2:3b"
	DefaultOllamaTemperature    = 0.1
	DefaultOllamaMaxTokens      = 4096
	DefaultOllamaTimeoutSeconds = 300

	DefaultFramework = "CIS MS-ISAC NIST Cybersecurity Framework"

	DefaultOutputDir    = "data/output"
	DefaultInputDir     = "data/input"
	DefaultReferenceDir = "data/reference"

	DefaultHTTPTimeoutSeconds = 30
)

func applyDefaults(cfg *Config) {
	cfg.Ollama.BaseURL = SetThen(cfg.Ollama.BaseURL, DefaultOllamaBaseURL)
	cfg.Ollama.Model = SetThen(cfg.Ollama.Model, DefaultOllamaModel)
	cfg.Ollama.MaxTokens = SetThen(cfg.Ollama.MaxTokens, DefaultOllamaMaxTokens)
	cfg.Ollama.TimeoutSeconds = SetThen(cfg.Ollama.TimeoutSeconds, DefaultOllamaTimeoutSeconds)

	cfg.Analysis.Framework = SetThen(cfg.Analysis.Framework, DefaultFramework)

	cfg.Output.Dir = SetThen(cfg.Output.Dir, DefaultOutputDir)
	cfg.Output.InputDir = SetThen(cfg.Output.InputDir, DefaultInputDir)
	cfg.Output.ReferenceDir = SetThen(cfg.Output.ReferenceDir, DefaultReferenceDir)

	cfg.HTTPClient.TimeoutSeconds = SetThen(cfg.HTTPClient.TimeoutSeconds, DefaultHTTPTimeoutSeconds)
}

// OllamaTemperature returns the generation temperature. An explicit 0 in the
// YAML file is a valid value, not a request for the default.
func (c *Config) OllamaTemperature() float64 {
	return GetFloatValue(c.Ollama.Temperature, DefaultOllamaTemperature)
}

// OllamaTimeout returns the request timeout for the generative backend.
func (c *Config) OllamaTimeout() time.Duration {
	return time.Duration(c.Ollama.TimeoutSeconds) * time.Second
}

// HTTPTimeout returns the timeout for plain HTTP calls such as the
// reachability check.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPClient.TimeoutSeconds) * time.Second
}

// Verbose reports whether per-stage progress output is enabled. Defaults to true.
func (c *Config) Verbose() bool {
	return GetBoolValue(c.Analysis.Verbose, true)
}
