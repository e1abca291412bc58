package provider

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the Gemini REST endpoint base
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config contains upstream client configuration
type Config struct {
	// BaseURL is the base URL of the generative API
	BaseURL string

	// APIKey is the authentication key, sent as a request header
	APIKey string

	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client

	// Timeout is the total request timeout (default: 60s)
	Timeout time.Duration

	// Connection pool settings
	MaxIdleConns    int           // Maximum idle connections (default: 100)
	MaxConnsPerHost int           // Maximum connections per host (default: 10)
	IdleConnTimeout time.Duration // Idle connection timeout (default: 90s)

	// Retry configuration
	Retry *RetryConfig
}

// NewConfig creates a new upstream configuration with defaults
func NewConfig() *Config {
	return &Config{
		BaseURL:         DefaultBaseURL,
		Timeout:         60 * time.Second,
		MaxIdleConns:    100,
		MaxConnsPerHost: 10,
		IdleConnTimeout: 90 * time.Second,
		Retry:           DefaultRetryConfig(),
	}
}

// WithBaseURL sets the base URL
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithAPIKey sets the API key
func (c *Config) WithAPIKey(apiKey string) *Config {
	c.APIKey = apiKey
	return c
}

// WithTimeout sets the total request timeout
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithHTTPClient sets the HTTP client
func (c *Config) WithHTTPClient(client *http.Client) *Config {
	c.HTTPClient = client
	return c
}

// WithRetry sets the retry configuration
func (c *Config) WithRetry(retry *RetryConfig) *Config {
	c.Retry = retry
	return c
}

// GetHTTPClient returns the HTTP client, creating a pooled one if not set
func (c *Config) GetHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	transport := &http.Transport{
		MaxIdleConns:    c.MaxIdleConns,
		MaxConnsPerHost: c.MaxConnsPerHost,
		IdleConnTimeout: c.IdleConnTimeout,
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
