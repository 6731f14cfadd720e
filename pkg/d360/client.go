package d360

import (
	"context"
	"time"
)

// Client provides access to the drive API.
type Client interface {
	Folders() FoldersClient
}

// FoldersClient manages drive folders.
type FoldersClient interface {
	List(ctx context.Context) ([]Folder, error)
	Create(ctx context.Context, title string) (*Folder, error)
	Rename(ctx context.Context, folderID, newTitle string) (*Folder, error)
	Delete(ctx context.Context, folderID string) (*DeleteResult, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a d360.Client.
type Config struct {
	// APIEndpoint is the base URL of the API, e.g. https://apihub.document360.io
	APIEndpoint string

	// APIToken is sent as a Bearer token on every request
	APIToken string

	// HTTPTimeout overrides the default request timeout when > 0
	HTTPTimeout time.Duration

	// Debug enables request/response logging through Logger
	Debug bool

	// Logger receives structured log output; nil disables logging
	Logger Logger

	// UserAgent overrides the default User-Agent header when non-empty
	UserAgent string
}
