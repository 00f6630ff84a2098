package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func TestSchema_ValidateDocument(t *testing.T) {
	schema := MustCompileSchema(testSchema)

	tests := []struct {
		name       string
		document   string
		wantValid  bool
		wantFields []string
	}{
		{"valid", `{"name":"probe","count":2}`, true, nil},
		{"missing required", `{"count":2}`, false, []string{"(root)"}},
		{"wrong type", `{"name":"probe","count":"two"}`, false, []string{"count"}},
		{"below minimum", `{"name":"probe","count":-1}`, false, []string{"count"}},
		{"not an object", `[1,2]`, false, []string{"(root)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := schema.ValidateDocument([]byte(tt.document))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid)
			for _, f := range tt.wantFields {
				assert.True(t, res.HasErrors(f), "expected error on %s, got %v", f, res.GetErrorMessages())
			}
		})
	}
}

func TestSchema_ValidateDocument_NotJSON(t *testing.T) {
	schema := MustCompileSchema(testSchema)

	_, err := schema.ValidateDocument([]byte("Internal Error"))
	assert.Error(t, err)
}

func TestCompileSchema_Invalid(t *testing.T) {
	_, err := CompileSchema(`{"type": 12}`)
	assert.Error(t, err)
}

func TestValidateURL(t *testing.T) {
	assert.True(t, ValidateURL("https://dev.api.contentgecko.io/product-image"))
	assert.True(t, ValidateURL("http://127.0.0.1:8080"))
	assert.False(t, ValidateURL("ftp://example.com/file"))
	assert.False(t, ValidateURL("dev.api.contentgecko.io"))
	assert.False(t, ValidateURL(""))
}
