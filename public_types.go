package filevault

import "github.com/filevault/filevault-go/internal/types"

// Public type aliases so SDK consumers can import only the filevault package.
type (
	// Requests
	FileUpload          = types.FileUpload
	UploadFileRequest   = types.UploadFileRequest
	UploadFilesRequest  = types.UploadFilesRequest
	ReplaceFileRequest  = types.ReplaceFileRequest
	CreateFolderRequest = types.CreateFolderRequest

	// Domain entities
	File    = types.File
	Folder  = types.Folder
	Metrics = types.Metrics

	// Configuration
	RetryPolicy = types.RetryPolicy
)

// Errors re-exported in errors.go
