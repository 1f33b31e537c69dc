package types

import "io"

// ------------------------------
// Request Types
// ------------------------------

// FileUpload is one file to be sent as a multipart form part. The reader is
// consumed once, when the request body is assembled; retried attempts resend
// the assembled body.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

// UploadFileRequest uploads a single file.
type UploadFileRequest struct {
	File        FileUpload
	Name        string // optional stored name
	Compression *bool  // optional; nil leaves the server default
	FolderID    string // optional destination folder
}

// UploadFilesRequest uploads several files in one request.
type UploadFilesRequest struct {
	Files       []FileUpload
	Name        string
	Compression *bool
	FolderID    string
}

// ReplaceFileRequest replaces the content of an existing file.
type ReplaceFileRequest struct {
	File        FileUpload
	Name        string
	Compression *bool
}

// CreateFolderRequest creates a folder, optionally nested under a parent.
type CreateFolderRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
}

// RenameFolderRequest renames an existing folder.
type RenameFolderRequest struct {
	Name string `json:"name"`
}
