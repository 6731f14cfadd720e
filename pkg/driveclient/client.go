package driveclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/d360-io/d360/internal/client"
	"github.com/d360-io/d360/pkg/d360"
)

// New creates a new Document360 Drive API client.
func New(ctx context.Context, config *d360.Config) (d360.Client, error) {
	if config == nil {
		return nil, d360.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, d360.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	driveClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return driveClient, nil
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(ctx context.Context, endpoint, token string) (d360.Client, error) {
	return New(ctx, &d360.Config{
		APIEndpoint: endpoint,
		APIToken:    token,
	})
}
