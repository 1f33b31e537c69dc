package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/filevault/filevault-go/internal/types"
)

// Metrics retrieves account usage against plan limits.
func Metrics(ctx context.Context, c *Caller) (*types.Metrics, error) {
	res, err := c.Do(ctx, http.MethodGet, "/api/v1/metrics", nil, nil)
	if err != nil {
		return nil, err
	}
	var m types.Metrics
	if err := json.Unmarshal(res.Data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
