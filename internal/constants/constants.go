package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 10 * time.Second
)

// API paths.
const (
	// FoldersPath is the Drive folder collection resource path.
	FoldersPath = "/v2/Drive/Folders"
)

// DefaultUserAgent identifies the client on outgoing requests.
const DefaultUserAgent = "d360-client/1.0"
