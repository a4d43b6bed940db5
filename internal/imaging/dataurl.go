// Package imaging converts between raw image bytes, uploaded files and the
// self-describing data URLs that listings store.
package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDataURL = errors.New("invalid image data url")

// EncodedImage is image bytes with their declared MIME type.
type EncodedImage struct {
	MIMEType string
	Data     []byte
}

// ParseDataURL decodes "data:<mime>;base64,<payload>".
func ParseDataURL(s string) (EncodedImage, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return EncodedImage{}, fmt.Errorf("%w: missing data: scheme", ErrInvalidDataURL)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return EncodedImage{}, fmt.Errorf("%w: missing payload", ErrInvalidDataURL)
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return EncodedImage{}, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURL)
	}
	if !strings.HasPrefix(mime, "image/") {
		return EncodedImage{}, fmt.Errorf("%w: not an image (%q)", ErrInvalidDataURL, mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return EncodedImage{}, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return EncodedImage{MIMEType: mime, Data: data}, nil
}

func (e EncodedImage) DataURL() string {
	return "data:" + e.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(e.Data)
}

// Extension returns a file suffix for a MIME type, defaulting to ".png".
func Extension(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "image/heic":
		return ".heic"
	default:
		return ".png"
	}
}
