// Package auth provides token handling for the Drive API client.
package auth

import (
	"context"
	"errors"
)

// ErrNoTokenConfigured is returned when a provider holds no token.
var ErrNoTokenConfigured = errors.New("no API token configured")

// TokenProvider supplies the bearer token for outgoing requests. The Drive
// API uses long-lived static tokens, so there is no refresh surface.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenProvider provides a fixed token.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken implements TokenProvider.
func (p *StaticTokenProvider) GetToken(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", ErrNoTokenConfigured
	}

	return p.token, nil
}
