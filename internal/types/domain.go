package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// File represents a stored file
type File struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	OriginalName string    `json:"originalName,omitempty"`
	MimeType     string    `json:"mimeType,omitempty"`
	Size         int64     `json:"size,omitempty"`
	URL          string    `json:"url,omitempty"`
	FolderID     string    `json:"folderId,omitempty"`
	Compressed   bool      `json:"compressed,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// Folder represents a folder
type Folder struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Metrics reports account-level usage against plan limits
type Metrics struct {
	StorageUsed  int64  `json:"storageUsed"`
	StorageLimit int64  `json:"storageLimit,omitempty"`
	TotalFiles   int64  `json:"totalFiles"`
	TotalFolders int64  `json:"totalFolders"`
	Plan         string `json:"plan,omitempty"`
}
