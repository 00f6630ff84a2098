package probe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Reporter writes the human-readable console report.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Reporter) FileNotFound(path string) {
	r.printf("Error: Image file not found at %s\n", path)
}

func (r *Reporter) Start(endpoint, imagePath string) {
	r.printf("Testing ContentGecko API endpoint: %s\n", endpoint)
	r.printf("Using image: %s\n", imagePath)
}

func (r *Reporter) EncodeFailed(cause string) {
	r.printf("Error encoding image: %s\n", cause)
}

func (r *Reporter) Encoded(img *EncodedImage) {
	r.printf("Image encoded successfully:\n")
	r.printf("  - File name: %s\n", img.FileName)
	r.printf("  - MIME type: %s\n", img.MimeType)
	r.printf("  - Base64 length: %d characters\n", len(img.Base64))
}

func (r *Reporter) PayloadSummary(endpoint string, p *Payload) {
	metadata, _ := json.Marshal(p.Metadata)

	r.printf("\nSending POST request to %s\n", endpoint)
	r.printf("Payload structure:\n")
	r.printf("  - product_id: %d\n", p.ProductID)
	r.printf("  - prompt: %s\n", p.Prompt)
	r.printf("  - image.file_name: %s\n", p.Image.FileName)
	r.printf("  - image.mime_type: %s\n", p.Image.MimeType)
	r.printf("  - image.base64: %d chars\n", len(p.Image.Base64))
	r.printf("  - metadata: %s\n", metadata)
}

func (r *Reporter) DryRun() {
	r.printf("\nDry run: request not sent\n")
}

// Response prints status, headers and the body, pretty-printing JSON with
// two-space indentation in the order the server sent the keys.
func (r *Reporter) Response(res *Result) {
	r.printf("\nResponse received:\n")
	r.printf("  - Status code: %d\n", res.StatusCode)
	r.printf("  - Headers:\n")
	keys := make([]string, 0, len(res.Headers))
	for k := range res.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.printf("      %s: %s\n", k, res.Headers[k])
	}

	if res.IsJSON {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, bytes.TrimSpace(res.Body), "", "  "); err == nil {
			r.printf("  - Response JSON:\n%s\n", pretty.String())
			return
		}
	}
	r.printf("  - Response text: %s\n", string(res.Body))
}

func (r *Reporter) Inspection(in *Inspection) {
	if in == nil {
		return
	}
	if in.APIError != "" {
		r.printf("  - API error message: %s\n", in.APIError)
	}
	switch {
	case in.HasImage && in.ImageBase64Len > 0:
		r.printf("  - Generated image: image_base64 (%d chars)\n", in.ImageBase64Len)
	case in.HasImage:
		r.printf("  - Generated image: image_url %s\n", in.ImageURL)
	}
	if in.HasImage && in.FileName != "" {
		r.printf("  - Generated file name: %s\n", in.FileName)
	}
	if len(in.ContractIssues) > 0 {
		r.printf("  - Note: response does not carry a generated image (%s)\n", strings.Join(in.ContractIssues, "; "))
	}
}

func (r *Reporter) Outcome(statusCode int) {
	if statusCode == http.StatusOK {
		r.printf("\n✅ API call successful!\n")
		return
	}
	r.printf("\n❌ API call failed with status %d\n", statusCode)
}

func (r *Reporter) RequestFailed(cause string) {
	r.printf("\n❌ Request failed: %s\n", cause)
}

func (r *Reporter) UnexpectedError(cause string) {
	r.printf("\n❌ Unexpected error: %s\n", cause)
}
