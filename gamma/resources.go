package gamma

import (
	"context"
	"net/http"
)

// Workspace resource endpoints.
const (
	themesPath  = "/themes"
	foldersPath = "/folders"
)

// ListThemes returns the themes available in the workspace.
func (c *Client) ListThemes(ctx context.Context) ([]Theme, error) {
	var resp struct {
		Data []Theme `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, themesPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListFolders returns the folders available in the workspace.
func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	var resp struct {
		Data []Folder `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, foldersPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
