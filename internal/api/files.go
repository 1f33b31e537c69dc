package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/filevault/filevault-go/internal/types"
)

// UploadFile uploads a single file as multipart form data.
func UploadFile(ctx context.Context, c *Caller, req types.UploadFileRequest) (*types.File, error) {
	body, contentType, err := encodeUploadForm("file", []types.FileUpload{req.File}, req.Name, req.Compression, req.FolderID)
	if err != nil {
		return nil, err
	}
	res, err := c.Do(ctx, http.MethodPost, "/api/v1/files/upload", contentTypeHeader(contentType), body)
	if err != nil {
		return nil, err
	}
	var f types.File
	if err := json.Unmarshal(res.Data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// UploadFiles uploads several files in one request; each file is a repeated
// "files" form part.
func UploadFiles(ctx context.Context, c *Caller, req types.UploadFilesRequest) ([]types.File, error) {
	body, contentType, err := encodeUploadForm("files", req.Files, req.Name, req.Compression, req.FolderID)
	if err != nil {
		return nil, err
	}
	res, err := c.Do(ctx, http.MethodPost, "/api/v1/files/upload", contentTypeHeader(contentType), body)
	if err != nil {
		return nil, err
	}
	var fs []types.File
	if err := json.Unmarshal(res.Data, &fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// ListFiles retrieves files, optionally scoped to one folder.
func ListFiles(ctx context.Context, c *Caller, folderID string) ([]types.File, error) {
	path := "/api/v1/files"
	if folderID != "" {
		path += "?folderId=" + url.QueryEscape(folderID)
	}
	res, err := c.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var fs []types.File
	if err := json.Unmarshal(res.Data, &fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// FileMetadata retrieves metadata for one file.
func FileMetadata(ctx context.Context, c *Caller, fileID string) (*types.File, error) {
	res, err := c.Do(ctx, http.MethodGet, "/api/v1/files/metadata/"+url.PathEscape(fileID), nil, nil)
	if err != nil {
		return nil, err
	}
	var f types.File
	if err := json.Unmarshal(res.Data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ReplaceFile replaces the content of an existing file.
func ReplaceFile(ctx context.Context, c *Caller, fileID string, req types.ReplaceFileRequest) (*types.File, error) {
	body, contentType, err := encodeUploadForm("file", []types.FileUpload{req.File}, req.Name, req.Compression, "")
	if err != nil {
		return nil, err
	}
	res, err := c.Do(ctx, http.MethodPut, "/api/v1/files/"+url.PathEscape(fileID), contentTypeHeader(contentType), body)
	if err != nil {
		return nil, err
	}
	var f types.File
	if err := json.Unmarshal(res.Data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFile removes a file by ID.
func DeleteFile(ctx context.Context, c *Caller, fileID string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/api/v1/files/"+url.PathEscape(fileID), nil, nil)
	return err
}
