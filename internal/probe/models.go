package probe

import (
	"time"

	"imagegecko-probe/internal/common/logger"
)

// Payload is the JSON body of the product-image request.
type Payload struct {
	ProductID int        `json:"product_id"`
	Prompt    string     `json:"prompt"`
	Image     ImageBlock `json:"image"`
	Metadata  Metadata   `json:"metadata"`
}

// ImageBlock is the encoded source image inside a Payload.
type ImageBlock struct {
	Base64   string `json:"base64"`
	MimeType string `json:"mime_type"`
	FileName string `json:"file_name"`
}

// Metadata carries product context the API stores alongside the generation.
type Metadata struct {
	SourceImageID int    `json:"source_image_id"`
	Categories    []int  `json:"categories"`
	ProductSKU    string `json:"product_sku"`
}

// EncodedImage is a source image ready to be embedded in a Payload.
type EncodedImage struct {
	Path     string
	FileName string
	MimeType string
	Base64   string
	Size     int64
}

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeHTTPFailure   Outcome = "http_failure"
	OutcomeFileMissing   Outcome = "file_missing"
	OutcomeEncodeFailed  Outcome = "encode_failed"
	OutcomeRequestFailed Outcome = "request_failed"
	OutcomeUnexpected    Outcome = "unexpected_error"
	OutcomeDryRun        Outcome = "dry_run"
)

// Result is everything a run observed. Response fields are zero when no
// response was received.
type Result struct {
	RunID      string
	Outcome    Outcome
	StatusCode int
	Headers    map[string]string
	Body       []byte
	IsJSON     bool
	Duration   time.Duration
	Inspection *Inspection
}

// Succeeded reports whether the endpoint answered with HTTP 200.
func (r *Result) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// ServiceDependencies are the collaborators NewService falls back to defaults for.
type ServiceDependencies struct {
	Logger logger.Logger
	Client Poster
}
