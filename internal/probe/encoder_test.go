package probe

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"imagegecko-probe/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func sampleImageBytes() []byte {
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	for i := 0; i < 1000; i++ {
		data = append(data, byte(i*7))
	}
	return append(data, 0xFF, 0xD9)
}

func TestEncodeImage_RoundTrip(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 1013}

	for _, n := range sizes {
		raw := sampleImageBytes()
		if n < len(raw) {
			raw = raw[:n]
		}
		path := writeImage(t, "prillipilt.jpg", raw)

		img, err := EncodeImage(path)
		require.NoError(t, err)

		decoded, err := base64.StdEncoding.DecodeString(img.Base64)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
		assert.Len(t, decoded, len(raw))
		assert.Equal(t, int64(len(raw)), img.Size)
		assert.Equal(t, "prillipilt.jpg", img.FileName)
		assert.Equal(t, "image/jpeg", img.MimeType)
		assert.Equal(t, path, img.Path)
	}
}

func TestEncodeImage_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.jpg")

	img, err := EncodeImage(path)

	assert.Nil(t, img)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFileNotFound))
	assert.Contains(t, err.Error(), path)
}

func TestEncodeImage_DirectoryFailsToEncode(t *testing.T) {
	dir := t.TempDir()

	_, err := EncodeImage(dir)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeImageEncodeFailed))
}

func TestMimeTypeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.JPG", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"photo.png", "image/png"},
		{"photo.gif", "image/gif"},
		{"photo.webp", "image/webp"},
		{"photo.tiff", "image/tiff"},
		{"/a/b/photo.svg", "image/svg+xml"},
		{"photo", "image/jpeg"},
		{"photo.", "image/jpeg"},
		{"photo.xyz", "image/jpeg"},
		{"archive.tar.gz", "image/jpeg"},
		{".hidden", "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MimeTypeFor(tt.path))
		})
	}
}
