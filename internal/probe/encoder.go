package probe

import (
	"encoding/base64"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"imagegecko-probe/internal/common/errors"
)

// DefaultMimeType is used when the extension is missing or unknown.
const DefaultMimeType = "image/jpeg"

var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".jpe":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".svg":  "image/svg+xml",
	".ico":  "image/vnd.microsoft.icon",
	".avif": "image/avif",
	".heic": "image/heic",
	".heif": "image/heif",
}

// MimeTypeFor resolves a media type from the file extension.
func MimeTypeFor(path string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return DefaultMimeType
}

// CheckImage returns a FILE_NOT_FOUND error when nothing exists at path.
func CheckImage(path string) error {
	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.NewFileNotFoundError(path)
		}
		return errors.NewImageEncodeFailedError(path, err)
	}
	return nil
}

// EncodeImage reads the whole file and base64-encodes it (RFC 4648, padded).
func EncodeImage(path string) (*EncodedImage, error) {
	if err := CheckImage(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewImageEncodeFailedError(path, err)
	}

	return &EncodedImage{
		Path:     path,
		FileName: filepath.Base(path),
		MimeType: MimeTypeFor(path),
		Base64:   base64.StdEncoding.EncodeToString(data),
		Size:     int64(len(data)),
	}, nil
}
