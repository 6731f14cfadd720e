package d360

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents an error response from the API.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// NewAPIError builds an APIError from a response status code and body.
// The API reports failures as {"error": "..."}; anything else falls back
// to the raw body, then to the standard status text.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error != "" {
		apiErr.Message = errBody.Error
		return apiErr
	}

	if message := strings.TrimSpace(string(body)); message != "" {
		apiErr.Message = message
		return apiErr
	}

	apiErr.Message = http.StatusText(statusCode)

	return apiErr
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAPITokenRequired    = errors.New("API token is required")
	ErrFolderIDRequired    = errors.New("folder ID is required")
	ErrFolderTitleRequired = errors.New("folder title is required")
)
