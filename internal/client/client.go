// Package client implements the d360.Client interface.
package client

import (
	"github.com/d360-io/d360/internal/auth"
	"github.com/d360-io/d360/internal/http"
	"github.com/d360-io/d360/pkg/d360"
)

// Client implements the d360.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     d360.Logger

	// Resource clients
	folders d360.FoldersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *d360.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new Drive API client.
func New(config *d360.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, d360.ErrAPIEndpointRequired
	}

	if config.APIToken == "" {
		return nil, d360.ErrAPITokenRequired
	}

	tokens := auth.NewStaticTokenProvider(config.APIToken)
	httpClient := http.NewClient(config.APIEndpoint, tokens, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.folders = NewFoldersClient(httpClient)

	return client, nil
}

// Folders implements d360.Client.Folders.
func (c *Client) Folders() d360.FoldersClient {
	return c.folders
}

// loggerAdapter adapts d360.Logger to http.Logger.
type loggerAdapter struct {
	logger d360.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
