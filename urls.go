package filevault

import (
	"net/url"
	"strconv"
	"strings"
)

// FileURLOptions are the image transformation parameters appended to a
// delivery URL. Zero values are omitted.
type FileURLOptions struct {
	Width   int
	Height  int
	Format  string // e.g. "webp", "avif"
	Quality int    // 1-100
}

// FileURL builds the delivery URL for a file, appending any transformation
// parameters as a query string. It is pure string construction; no network
// call is made and the file's existence is not checked. Parameters appear in
// a fixed order: width, height, format, quality.
func (c *Client) FileURL(fileID string, opts *FileURLOptions) string {
	var b strings.Builder
	b.WriteString(c.cfg.BaseURL)
	b.WriteString("/api/v1/files/")
	b.WriteString(url.PathEscape(fileID))
	if opts == nil {
		return b.String()
	}

	sep := byte('?')
	appendParam := func(key, value string) {
		b.WriteByte(sep)
		sep = '&'
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	if opts.Width > 0 {
		appendParam("width", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		appendParam("height", strconv.Itoa(opts.Height))
	}
	if opts.Format != "" {
		appendParam("format", opts.Format)
	}
	if opts.Quality > 0 {
		appendParam("quality", strconv.Itoa(opts.Quality))
	}
	return b.String()
}
