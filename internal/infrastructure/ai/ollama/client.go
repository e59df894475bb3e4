// Package ollama provides text generation against a local Ollama server
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
)

const defaultBaseURL = "http://localhost:11434"

// Client calls the Ollama generate API
type Client struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new Ollama client
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		model:   cfg.Model,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds+5) * time.Second,
		},
		logger: logger.Named("ollama"),
	}
}

var _ outbound.TextGenerator = (*Client)(nil)

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Model     string `json:"model"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	EvalCount int    `json:"eval_count,omitempty"`
}

// Generate sends a prompt to Ollama and returns the raw model reply
func (c *Client) Generate(ctx context.Context, prompt string, opts outbound.GenerateOptions) (string, error) {
	model := opts.Model
	if model == "" {
		model = c.model
	}

	options := map[string]any{
		"temperature": opts.Temperature,
	}
	if opts.MaxTokens > 0 {
		options["num_predict"] = opts.MaxTokens
	}

	body, err := json.Marshal(generateRequest{
		Model:   model,
		Prompt:  prompt,
		Stream:  false,
		Options: options,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(raw))
	}

	var reply generateResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Ollama generation completed",
		zap.String("model", reply.Model),
		zap.Int("eval_count", reply.EvalCount),
		zap.Duration("duration", time.Since(start)),
	)

	return reply.Response, nil
}
