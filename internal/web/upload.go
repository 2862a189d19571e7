package web

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

const maxPhotoSize = 50 * 1024 * 1024 // 50 MB

// allowedImageTypes is the set of MIME types accepted for uploaded photos.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniff spec (and
// therefore the stdlib) does not include a WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedImageMIME returns the detected MIME type and true if the data is an
// accepted image format, or ("", false) otherwise.
func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

// stageUpload reads the named multipart file field, verifies it is an
// accepted image, and stages it in the media store under prefix. The caller
// must commit or discard the returned stage key.
func (s *Server) stageUpload(r *http.Request, field, prefix string) (string, error) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		return "", fmt.Errorf("parse multipart form: %w", err)
	}
	file, _, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("missing %s file: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	mimeType, ok := allowedImageMIME(data)
	if !ok {
		return "", fmt.Errorf("unsupported image format")
	}
	key, err := s.media.Stage(r.Context(), prefix, mimeType, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	return key, nil
}
