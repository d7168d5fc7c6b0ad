// Package ai provides a client for the Gemini generateContent endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chronosdeck/internal/errors"
)

// DefaultBaseURL is the production endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Roles for conversation turns.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Client is a client for the generative text endpoint. Authentication is a
// static API key passed as a query parameter.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Config configures the client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string        // defaults to DefaultBaseURL
	Timeout time.Duration // defaults to 30s
}

// New creates a new client. The API key is required.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Part is one text fragment of a content turn.
type Part struct {
	Text string `json:"text"`
}

// Content is a role-tagged turn in the request body.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Text builds a single-part content turn.
func Text(role, text string) Content {
	return Content{Role: role, Parts: []Part{{Text: text}}}
}

// generateRequest is the request body for generateContent.
type generateRequest struct {
	Contents []Content `json:"contents"`
}

// generateResponse is the response body for generateContent.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateContent sends the given turns and returns the first candidate's
// text, with multi-part candidates joined by newlines. An empty candidate
// set yields "".
func (c *Client) GenerateContent(ctx context.Context, contents []Content) (string, error) {
	requestData, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	if len(response.Candidates) == 0 {
		return "", nil
	}

	var parts []string
	for _, p := range response.Candidates[0].Content.Parts {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n"), nil
}

// Generate sends a single user prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.GenerateContent(ctx, []Content{Text(RoleUser, prompt)})
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}
