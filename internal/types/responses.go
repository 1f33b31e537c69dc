package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// Envelope is the JSON shape of every successful response:
// {"status": 200, "message": "ok", "data": ...}. Data is kept raw so each
// operation owns its typed decode.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
