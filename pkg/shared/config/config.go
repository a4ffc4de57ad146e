package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the root of the YAML configuration. It is loaded once at startup
// and passed read-only to every component constructor.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Ollama     Ollama     `yaml:"ollama"`
	Analysis   Analysis   `yaml:"analysis"`
	Output     Output     `yaml:"output"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

type HTTPClient struct {
	Debug          bool `yaml:"debug"`
	TimeoutSeconds int  `yaml:"timeout_seconds"`
}

// Ollama describes the local generative backend. Temperature is a pointer so
// an explicit 0 survives defaulting.
type Ollama struct {
	BaseURL        string   `yaml:"base_url"`
	Model          string   `yaml:"model"`
	Temperature    *float64 `yaml:"temperature"`
	MaxTokens      int      `yaml:"max_tokens"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type Analysis struct {
	Framework string `yaml:"framework"`
	Verbose   *bool  `yaml:"verbose"`
}

type Output struct {
	Dir          string `yaml:"dir"`
	InputDir     string `yaml:"input_dir"`
	ReferenceDir string `yaml:"reference_dir"`
}

// ValidateConfigPath checks that the given path points to a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the configuration file. A missing file is not an error:
// every directive has a usable default, so the tool runs without a config.yml.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		applyDefaults(config)
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}
	applyDefaults(config)

	return config, nil
}
