// Package ollama is a minimal client for a locally hosted Ollama backend.
// One blocking request per call, no retries.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/config"
	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/httpclient"
)

type Client struct {
	httpc       *resty.Client
	model       string
	temperature float64
	maxTokens   int
	pingTimeout time.Duration
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// New builds a client from the ollama directive of the configuration.
// An empty model argument keeps the configured model identifier.
func New(cfg *config.Config, logger hclog.Logger, modelOverride string) *Client {
	model := cfg.Ollama.Model
	if modelOverride != "" {
		model = modelOverride
	}

	httpc := httpclient.NewRestyClient(logger, cfg.OllamaTimeout(), cfg.HTTPClient.Debug)
	httpc.SetBaseURL(cfg.Ollama.BaseURL)

	return &Client{
		httpc:       httpc,
		model:       model,
		temperature: cfg.OllamaTemperature(),
		maxTokens:   cfg.Ollama.MaxTokens,
		pingTimeout: cfg.HTTPTimeout(),
	}
}

// Model returns the model identifier requests are issued with.
func (c *Client) Model() string {
	return c.model
}

// Ping checks that the backend answers at all. Ollama serves a plain
// "Ollama is running" body on its root path. The check uses the short
// http_client timeout, not the long generate timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()

	resp, err := c.httpc.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("backend returned %d on ping", resp.StatusCode())
	}
	return nil
}

// Generate issues one completion request and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	var r generateResponse
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:  c.model,
			Prompt: prompt,
			Stream: false,
			Options: generateOptions{
				Temperature: c.temperature,
				NumPredict:  c.maxTokens,
			},
		}).
		SetResult(&r).
		SetError(&r).
		Post("/api/generate")
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		if r.Error != "" {
			return "", fmt.Errorf("%d from backend: %s", resp.StatusCode(), r.Error)
		}
		return "", fmt.Errorf("%d from backend on generate", resp.StatusCode())
	}
	if r.Response == "" {
		return "", fmt.Errorf("backend returned an empty response for model %q", c.model)
	}
	return r.Response, nil
}
