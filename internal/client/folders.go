package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/d360-io/d360/internal/constants"
	"github.com/d360-io/d360/internal/http"
	"github.com/d360-io/d360/pkg/d360"
)

// FoldersClient implements d360.FoldersClient.
type FoldersClient struct {
	httpClient *http.Client
}

// NewFoldersClient creates a new folders client.
func NewFoldersClient(httpClient *http.Client) *FoldersClient {
	return &FoldersClient{
		httpClient: httpClient,
	}
}

// List implements d360.FoldersClient.List.
func (c *FoldersClient) List(ctx context.Context) ([]d360.Folder, error) {
	resp, err := c.httpClient.Get(ctx, constants.FoldersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	var folders []d360.Folder

	err = json.Unmarshal(resp.Body, &folders)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", &d360.APIError{
			StatusCode: resp.StatusCode,
			Message:    "response is not a folder list",
		})
	}

	return folders, nil
}

// Create implements d360.FoldersClient.Create.
func (c *FoldersClient) Create(ctx context.Context, title string) (*d360.Folder, error) {
	if title == "" {
		return nil, d360.ErrFolderTitleRequired
	}

	resp, err := c.httpClient.Post(ctx, constants.FoldersPath, &d360.FolderCreateRequest{Title: title})
	if err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}

	folder, err := parseFolder(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}

	return folder, nil
}

// Rename implements d360.FoldersClient.Rename.
func (c *FoldersClient) Rename(ctx context.Context, folderID, newTitle string) (*d360.Folder, error) {
	if folderID == "" {
		return nil, d360.ErrFolderIDRequired
	}

	if newTitle == "" {
		return nil, d360.ErrFolderTitleRequired
	}

	path := constants.FoldersPath + "/" + folderID

	resp, err := c.httpClient.Put(ctx, path, &d360.FolderRenameRequest{Title: newTitle})
	if err != nil {
		return nil, fmt.Errorf("renaming folder: %w", err)
	}

	folder, err := parseFolder(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("renaming folder: %w", err)
	}

	return folder, nil
}

// Delete implements d360.FoldersClient.Delete. Some deployments answer with
// an empty 204 body; that counts as confirmation.
func (c *FoldersClient) Delete(ctx context.Context, folderID string) (*d360.DeleteResult, error) {
	if folderID == "" {
		return nil, d360.ErrFolderIDRequired
	}

	path := constants.FoldersPath + "/" + folderID

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting folder: %w", err)
	}

	result := &d360.DeleteResult{Deleted: true, ID: folderID}

	if len(resp.Body) > 0 {
		err = json.Unmarshal(resp.Body, result)
		if err != nil {
			return nil, fmt.Errorf("deleting folder: %w", &d360.APIError{
				StatusCode: resp.StatusCode,
				Message:    "response is not a delete confirmation",
			})
		}

		if result.ID == "" {
			result.ID = folderID
		}
	}

	return result, nil
}

// parseFolder decodes a single-folder payload, requiring the server-assigned
// id to be present.
func parseFolder(statusCode int, body []byte) (*d360.Folder, error) {
	var folder d360.Folder

	err := json.Unmarshal(body, &folder)
	if err != nil {
		return nil, &d360.APIError{StatusCode: statusCode, Message: "response is not a folder"}
	}

	if folder.ID == "" {
		return nil, &d360.APIError{StatusCode: statusCode, Message: "response is missing the folder id"}
	}

	return &folder, nil
}
