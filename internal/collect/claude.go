// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/prospect-engine/internal/httputil"
	"github.com/pdiddy/prospect-engine/pkg/types"
)

// claudeAPIURL is the Claude API endpoint. Package-level var for test
// substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

// generationTemperature matches the value the first production run used.
const generationTemperature = 0.6

// ClaudeBackend calls the Claude Messages API to generate one batch of
// prospect rows. Rate limits (HTTP 429) are retried with backoff; every
// other failure is returned to the caller and terminates the run.
type ClaudeBackend struct {
	APIKey     string
	Model      string
	SystemRole string
	MaxRetries int
	Client     *http.Client

	// Notices receives rate-limit messages; nil discards them.
	Notices io.Writer
}

// defaultMaxRetries bounds rate-limit retries when the config leaves
// MaxRetries unset.
const defaultMaxRetries = 5

// NewClaudeBackend builds a backend from cfg.
func NewClaudeBackend(cfg types.AIConfig) *ClaudeBackend {
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}
	return &ClaudeBackend{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		SystemRole: cfg.SystemRole,
		MaxRetries: retries,
	}
}

// claudeRequest is the request body for the Claude Messages API.
type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	System      string          `json:"system,omitempty"`
	Temperature float64         `json:"temperature"`
	Messages    []claudeMessage `json:"messages"`
}

// claudeMessage is a single message in the Claude API conversation.
type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the response body from the Claude Messages API.
type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

// claudeContent is a content block in the Claude API response.
type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Generate sends the prompt and returns the concatenated text content of the
// response. A response with no text blocks yields "" without error; the
// loop treats that as an empty batch, not a failure.
func (c *ClaudeBackend) Generate(ctx context.Context, prompt string) (string, error) {
	system := c.SystemRole
	if system == "" {
		system = DefaultSystemRole
	}

	reqBody := claudeRequest{
		Model:       c.Model,
		MaxTokens:   4096,
		System:      system,
		Temperature: generationTemperature,
		Messages: []claudeMessage{
			{Role: "user", Content: prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, c.MaxRetries, c.Notices)
	if err != nil {
		return "", fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Claude API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding Claude response: %w", err)
	}

	var b strings.Builder
	for _, block := range cResp.Content {
		if block.Type != "text" {
			continue
		}
		b.WriteString(block.Text)
	}
	return b.String(), nil
}
