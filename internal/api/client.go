package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/diogo/llmsay/internal/logger"
	"github.com/diogo/llmsay/internal/models"
)

// DefaultBaseURL is used when NewClient is given an empty base URL.
const DefaultBaseURL = "http://localhost:11434"

// DefaultTimeout applies when no WithTimeout option is given.
const DefaultTimeout = 300 * time.Second

// Doer sends a single HTTP request. tls_client.HttpClient satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Generator is the contract the CLI needs from a client
type Generator interface {
	Generate(ctx context.Context, model, message string) (*models.GenerateOutput, error)
}

// OllamaClient talks to an Ollama-compatible /api/generate endpoint
type OllamaClient struct {
	baseURL    string
	httpClient Doer
	timeout    time.Duration
	log        *logger.LogEntry
}

var _ Generator = (*OllamaClient)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*OllamaClient)

// WithHTTPClient replaces the default TLS client, mainly for tests
func WithHTTPClient(d Doer) ClientOption {
	return func(c *OllamaClient) {
		c.httpClient = d
	}
}

// WithTimeout sets the request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *OllamaClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a client for baseURL (e.g. http://localhost:11434)
func NewClient(baseURL string, opts ...ClientOption) (*OllamaClient, error) {
	client := &OllamaClient{
		baseURL: normalizeBaseURL(baseURL),
		timeout: DefaultTimeout,
		log:     logger.Named("api"),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// BaseURL returns the normalized base URL
func (c *OllamaClient) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full generate URL
func (c *OllamaClient) Endpoint() string {
	return c.baseURL + models.EndpointGenerate
}

func normalizeBaseURL(baseURL string) string {
	u := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if u == "" {
		return DefaultBaseURL
	}
	return u
}
