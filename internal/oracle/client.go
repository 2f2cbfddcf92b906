package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tsaristov/MoodJournal/internal/config"
)

// Client is a stateless transport to an OpenAI-compatible chat completions
// endpoint (OpenRouter in production). It performs no retries; retry policy,
// if any, belongs to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an oracle client. An empty API key fails immediately with
// config.ErrMissingCredential rather than at first use.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, config.ErrMissingCredential
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system+user instruction pair and returns the raw generated
// text. Failure modes: *TransportError on network failure, *ServiceError on a
// non-2xx status, *ParseError when the success body lacks the expected
// choices[0].message.content shape.
func (c *Client) Complete(ctx context.Context, model, system, user string, temperature float64, maxTokens int) (string, error) {
	req := completionRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ServiceError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &ParseError{Body: string(respBody), Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &ParseError{Body: string(respBody), Err: fmt.Errorf("no choices in response")}
	}

	return parsed.Choices[0].Message.Content, nil
}
