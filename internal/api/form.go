package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/filevault/filevault-go/internal/types"
)

// encodeUploadForm assembles a multipart body with one part per file under
// the given field name, followed by the optional form fields. The body is
// materialized so retried attempts can resend it.
func encodeUploadForm(field string, files []types.FileUpload, name string, compression *bool, folderID string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		fw, err := w.CreateFormFile(field, f.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(fw, f.Reader); err != nil {
			return nil, "", err
		}
	}
	if name != "" {
		if err := w.WriteField("name", name); err != nil {
			return nil, "", err
		}
	}
	if compression != nil {
		if err := w.WriteField("compression", strconv.FormatBool(*compression)); err != nil {
			return nil, "", err
		}
	}
	if folderID != "" {
		if err := w.WriteField("folderId", folderID); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func contentTypeHeader(contentType string) http.Header {
	return http.Header{"Content-Type": []string{contentType}}
}
