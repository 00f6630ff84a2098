package probe

import (
	"bytes"
	"encoding/json"
	"net/http"

	"imagegecko-probe/internal/common/validation"
)

// generationResultSchema is the success body the WordPress plugin consumes:
// a generated image either inline or by URL.
var generationResultSchema = validation.MustCompileSchema(`{
	"type": "object",
	"properties": {
		"image_base64": {"type": "string", "minLength": 1},
		"image_url": {"type": "string", "minLength": 1},
		"file_name": {"type": "string"},
		"prompt": {"type": "string"}
	},
	"anyOf": [
		{"required": ["image_base64"]},
		{"required": ["image_url"]}
	]
}`)

// Inspection summarises a JSON response against the plugin contract.
type Inspection struct {
	APIError       string
	HasImage       bool
	ImageBase64Len int
	ImageURL       string
	FileName       string
	ContractIssues []string
}

// InspectResponse returns nil for non-JSON bodies and for statuses that are
// neither 200 nor an error (>= 400).
func InspectResponse(statusCode int, body []byte) *Inspection {
	if !json.Valid(body) {
		return nil
	}

	var fields map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		fields = nil
	}

	switch {
	case statusCode >= http.StatusBadRequest:
		in := &Inspection{}
		if msg, ok := fields["error"].(string); ok {
			in.APIError = msg
		}
		return in

	case statusCode == http.StatusOK:
		in := &Inspection{}
		res, err := generationResultSchema.ValidateDocument(body)
		if err != nil {
			in.ContractIssues = []string{err.Error()}
			return in
		}
		if !res.Valid {
			in.ContractIssues = res.GetErrorMessages()
			return in
		}
		if b64, ok := fields["image_base64"].(string); ok && b64 != "" {
			in.ImageBase64Len = len(b64)
		}
		if u, ok := fields["image_url"].(string); ok {
			in.ImageURL = u
		}
		if fn, ok := fields["file_name"].(string); ok {
			in.FileName = fn
		}
		in.HasImage = true
		return in
	}

	return nil
}
