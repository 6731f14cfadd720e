package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	d360http "github.com/d360-io/d360/internal/http"
	"github.com/d360-io/d360/pkg/d360"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTokenProvider for testing.
type MockTokenProvider struct {
	token string
	err   error
}

func (m *MockTokenProvider) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/Drive/Folders", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := []map[string]string{{"id": "folder-1", "title": "Docs"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		tokens := &MockTokenProvider{token: "test-token"}
		client := d360http.NewClient(server.URL, tokens)

		req := &d360http.Request{
			Method: "GET",
			Path:   "/v2/Drive/Folders",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "folder-1", result[0]["id"])
		assert.Equal(t, "Docs", result[0]["title"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/Drive/Folders", request.URL.Path)
			assert.Equal(t, "title=Docs", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := d360http.NewClient(server.URL, nil)

		req := &d360http.Request{
			Method: "GET",
			Path:   "/v2/Drive/Folders",
			Query:  url.Values{"title": []string{"Docs"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "New Folder", body["title"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := d360http.NewClient(server.URL, nil)

		req := &d360http.Request{
			Method: "POST",
			Path:   "/v2/Drive/Folders",
			Body:   map[string]string{"title": "New Folder"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{"error": "Folder not found"})
		}))
		defer server.Close()

		client := d360http.NewClient(server.URL, nil)

		req := &d360http.Request{
			Method: "GET",
			Path:   "/v2/Drive/Folders/missing",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &d360.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "Folder not found", apiErr.Message)
	})

	t.Run("redirect status response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotModified)
		}))
		defer server.Close()

		client := d360http.NewClient(server.URL, nil)

		req := &d360http.Request{
			Method: "DELETE",
			Path:   "/v2/Drive/Folders/folder_xyz",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 304, resp.StatusCode)

		apiErr := &d360.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 304, apiErr.StatusCode)
		assert.Equal(t, "Not Modified", apiErr.Message)
	})

	t.Run("token provider failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("request should not reach the server")
		}))
		defer server.Close()

		tokens := &MockTokenProvider{err: errors.New("token store unavailable")}
		client := d360http.NewClient(server.URL, tokens)

		_, err := client.Do(context.Background(), &d360http.Request{Method: "GET", Path: "/v2/Drive/Folders"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting token")
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := d360http.NewClient(server.URL, nil)

		req := &d360http.Request{
			Method: "GET",
			Path:   "/v2/Drive/Folders",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := d360http.NewClient(server.URL, nil, d360http.WithLogger(logger), d360http.WithDebug(true))

		req := &d360http.Request{
			Method: "GET",
			Path:   "/v2/Drive/Folders",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*d360http.Client, context.Context) (*d360http.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *d360http.Client, ctx context.Context) (*d360http.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *d360http.Client, ctx context.Context) (*d360http.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"title": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *d360http.Client, ctx context.Context) (*d360http.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"title": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *d360http.Client, ctx context.Context) (*d360http.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := d360http.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}
