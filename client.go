// Package filevault is a Go client for the FileVault file-storage and image
// delivery HTTP API. A Client wraps one account (API key + secret) and
// exposes file, folder, and usage operations; every call runs through a
// single request executor that applies credentials, a per-attempt timeout,
// and the configured retry policy.
package filevault

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/filevault/filevault-go/internal/api"
	"github.com/filevault/filevault-go/internal/types"
)

// DefaultHTTPTimeout bounds a single attempt when no timeout is configured.
const DefaultHTTPTimeout = 30 * time.Second

// DefaultRetryDelay is the fixed inter-attempt wait when none is configured.
const DefaultRetryDelay = 300 * time.Millisecond

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	http   *http.Client
	cfg    *api.Config
	caller *api.Caller
}

// New constructs a Client for the given base URL. Credentials may be
// supplied via WithAuth or later via SetAuth; operations fail with an
// UNAUTHORIZED error, without touching the network, until both values are
// present. Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		http: &http.Client{},
		cfg: &api.Config{
			BaseURL: strings.TrimRight(baseURL, "/"),
			Timeout: DefaultHTTPTimeout,
			Retry:   types.RetryPolicy{RetryDelay: DefaultRetryDelay},
		},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	c.caller = api.NewCaller(c.http, c.cfg)
	return c
}

// --------------------------------------------------------------------
// Configuration setters
// --------------------------------------------------------------------

// SetAuth replaces the credential pair attached to every request.
// Not safe to call while requests are in flight; a mid-sequence change
// affects subsequent attempts only.
func (c *Client) SetAuth(apiKey, apiSecret string) {
	c.cfg.APIKey = apiKey
	c.cfg.APISecret = apiSecret
}

// SetHTTPTimeout replaces the per-attempt timeout.
func (c *Client) SetHTTPTimeout(d time.Duration) {
	c.cfg.Timeout = d
}

// SetRetryPolicy replaces the retry policy applied to subsequent requests.
func (c *Client) SetRetryPolicy(p RetryPolicy) {
	c.cfg.Retry = p
}

// --------------------------------------------------------------------
// File operations - delegated to internal/api
// --------------------------------------------------------------------

// UploadFile uploads a single file.
func (c *Client) UploadFile(ctx context.Context, req UploadFileRequest) (*File, error) {
	return api.UploadFile(ctx, c.caller, req)
}

// UploadFiles uploads several files in one request.
func (c *Client) UploadFiles(ctx context.Context, req UploadFilesRequest) ([]File, error) {
	return api.UploadFiles(ctx, c.caller, req)
}

// ListFiles retrieves files; pass an empty folderID for the root listing.
func (c *Client) ListFiles(ctx context.Context, folderID string) ([]File, error) {
	return api.ListFiles(ctx, c.caller, folderID)
}

// FileMetadata retrieves metadata for a file by ID.
func (c *Client) FileMetadata(ctx context.Context, fileID string) (*File, error) {
	return api.FileMetadata(ctx, c.caller, fileID)
}

// ReplaceFile replaces the content of an existing file.
func (c *Client) ReplaceFile(ctx context.Context, fileID string, req ReplaceFileRequest) (*File, error) {
	return api.ReplaceFile(ctx, c.caller, fileID, req)
}

// DeleteFile removes a file by ID.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	return api.DeleteFile(ctx, c.caller, fileID)
}

// --------------------------------------------------------------------
// Folder operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateFolder creates a folder, optionally under a parent.
func (c *Client) CreateFolder(ctx context.Context, req CreateFolderRequest) (*Folder, error) {
	return api.CreateFolder(ctx, c.caller, req)
}

// ListFolders returns all folders.
func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	return api.ListFolders(ctx, c.caller)
}

// RenameFolder renames a folder by ID.
func (c *Client) RenameFolder(ctx context.Context, folderID, name string) (*Folder, error) {
	return api.RenameFolder(ctx, c.caller, folderID, name)
}

// DeleteFolder removes a folder by ID.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	return api.DeleteFolder(ctx, c.caller, folderID)
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// Metrics retrieves account usage against plan limits.
func (c *Client) Metrics(ctx context.Context) (*Metrics, error) {
	return api.Metrics(ctx, c.caller)
}
