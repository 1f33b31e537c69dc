package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/filevault/filevault-go/internal/types"
)

var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

// CreateFolder creates a folder, optionally under a parent.
func CreateFolder(ctx context.Context, c *Caller, req types.CreateFolderRequest) (*types.Folder, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	res, err := c.Do(ctx, http.MethodPost, "/api/v1/folders", jsonHeader, body)
	if err != nil {
		return nil, err
	}
	var f types.Folder
	if err := json.Unmarshal(res.Data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFolders returns all folders.
func ListFolders(ctx context.Context, c *Caller) ([]types.Folder, error) {
	res, err := c.Do(ctx, http.MethodGet, "/api/v1/folders", nil, nil)
	if err != nil {
		return nil, err
	}
	var fs []types.Folder
	if err := json.Unmarshal(res.Data, &fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// RenameFolder renames an existing folder.
func RenameFolder(ctx context.Context, c *Caller, folderID, name string) (*types.Folder, error) {
	body, err := json.Marshal(types.RenameFolderRequest{Name: name})
	if err != nil {
		return nil, err
	}
	res, err := c.Do(ctx, http.MethodPatch, "/api/v1/folders/"+url.PathEscape(folderID), jsonHeader, body)
	if err != nil {
		return nil, err
	}
	var f types.Folder
	if err := json.Unmarshal(res.Data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFolder removes a folder by ID.
func DeleteFolder(ctx context.Context, c *Caller, folderID string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/api/v1/folders/"+url.PathEscape(folderID), nil, nil)
	return err
}
