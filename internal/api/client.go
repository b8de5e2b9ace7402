// Package api is the typed HTTP client for the backend and AI services.
// All calls are single request/response round trips; callers decide which
// store mutation to apply on success.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default service locations, overridable per client.
const (
	DefaultBaseURL = "http://localhost:8080/api"
	DefaultAIURL   = "http://localhost:8000/ai"

	defaultTimeout = 90 * time.Second
)

// ServiceError represents a non-2xx response from a service, carrying the
// human-readable message extracted from the body.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Client talks to the backend API and the AI service. The zero value is not
// usable; construct with New.
type Client struct {
	baseURL    string
	aiURL      string
	httpClient *http.Client
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the backend API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithAIURL overrides the AI service base URL.
func WithAIURL(u string) Option {
	return func(c *Client) { c.aiURL = u }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a Client with defaults applied.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		aiURL:      DefaultAIURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	return c.token
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil. Non-2xx responses become a
// ServiceError with the body's error text.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServiceError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the error or message field from an error body,
// falling back to the raw text and finally to a generic HTTP status line.
func errorMessage(status int, body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	if text := string(bytes.TrimSpace(body)); text != "" && !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}
