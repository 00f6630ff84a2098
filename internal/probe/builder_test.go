package probe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload_WireShape(t *testing.T) {
	img := &EncodedImage{
		FileName: "prillipilt.jpg",
		MimeType: "image/jpeg",
		Base64:   "/9j/4AAQ",
	}

	payload := BuildPayload(img, DefaultConfig().Payload)

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"product_id": 123,
		"prompt": "Studio lit model photo with professional lighting and clean background",
		"image": {
			"base64": "/9j/4AAQ",
			"mime_type": "image/jpeg",
			"file_name": "prillipilt.jpg"
		},
		"metadata": {
			"source_image_id": 456,
			"categories": [1, 2],
			"product_sku": "TEST-SKU-123"
		}
	}`, string(body))
}

func TestBuildPayload_EmptyCategoriesEncodeAsArray(t *testing.T) {
	payload := BuildPayload(&EncodedImage{}, PayloadConfig{Categories: nil})

	body, err := json.Marshal(payload.Metadata)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"categories":[]`)
}

func TestBuildPayload_DoesNotAliasConfig(t *testing.T) {
	cfg := PayloadConfig{Categories: []int{1, 2}}

	payload := BuildPayload(&EncodedImage{}, cfg)
	cfg.Categories[0] = 99

	assert.Equal(t, []int{1, 2}, payload.Metadata.Categories)
}
