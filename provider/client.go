package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	owmstudio "github.com/kaim1005kaim/owm-studio"
	"github.com/kaim1005kaim/owm-studio/gemini"
)

// Generator sends one generation request to the upstream model endpoint
type Generator interface {
	// GenerateContent issues a single generateContent call and returns the
	// parsed response envelope, transparently retrying transient failures
	GenerateContent(ctx context.Context, model string, contents []gemini.Content, config *gemini.GenerationConfig) (*gemini.GenerateContentResponse, error)
}

// Client talks to the Gemini generateContent endpoint over HTTP
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new upstream client
func NewClient(config *Config) *Client {
	if config == nil {
		config = NewConfig()
	}
	if config.Retry == nil {
		config.Retry = DefaultRetryConfig()
	}
	return &Client{
		config: config,
		client: config.GetHTTPClient(),
	}
}

// Config returns the client configuration
func (c *Client) Config() *Config {
	return c.config
}

// GenerateContent sends one generation request, retrying on HTTP 500/503 and
// network-level failures per the fixed backoff ladder. Each attempt re-posts
// the same immutable body; no state survives the call.
func (c *Client) GenerateContent(ctx context.Context, model string, contents []gemini.Content, config *gemini.GenerationConfig) (*gemini.GenerateContentResponse, error) {
	req := &gemini.GenerateContentRequest{Contents: contents}
	if config != nil {
		req.GenerationConfig = *config
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, model)
	retry := c.config.Retry

	var lastErr error
	for attempt := 0; attempt < retry.MaxAttempts; attempt++ {
		resp, err := c.post(ctx, url, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}

		retry.sleep(ctx, attempt)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", owmstudio.ErrRetriesExhausted, retry.MaxAttempts, lastErr)
}

func (c *Client) post(ctx context.Context, url string, body []byte) (*gemini.GenerateContentResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &owmstudio.RequestError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var out gemini.GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
