package imaging

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadBytes caps a single uploaded photo.
const MaxUploadBytes = 20 << 20

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
)

// FromFiles reads uploaded photos in order and encodes each one. The MIME
// type is sniffed from the content, not trusted from the client.
func FromFiles(files []*multipart.FileHeader) ([]EncodedImage, error) {
	out := make([]EncodedImage, 0, len(files))
	for _, fh := range files {
		img, err := fromFile(fh)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
		}
		out = append(out, img)
	}
	return out, nil
}

func fromFile(fh *multipart.FileHeader) (EncodedImage, error) {
	if fh.Size > MaxUploadBytes {
		return EncodedImage{}, fmt.Errorf("%w: %d bytes, limit is %d", ErrTooLarge, fh.Size, MaxUploadBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return EncodedImage{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return EncodedImage{}, err
	}
	if len(data) > MaxUploadBytes {
		return EncodedImage{}, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, MaxUploadBytes)
	}
	return FromBytes(data)
}

// FromBytes sniffs the MIME type of raw image bytes.
func FromBytes(data []byte) (EncodedImage, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return EncodedImage{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}
	return EncodedImage{MIMEType: mt.String(), Data: data}, nil
}
