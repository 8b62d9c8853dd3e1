package imaging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/text/cases"
)

// Format resolution failures. Both are caused by the client.
var (
	// ErrInvalidFormat means the token is not an image extension at all.
	ErrInvalidFormat = errors.New("invalid extension")

	// ErrUnsupportedFormat means the token names a known image format that
	// this service does not produce (e.g. "bmp").
	ErrUnsupportedFormat = errors.New("unsupported extension")
)

// Format identifies an output encoding.
type Format int

// Supported output formats. SVG is the only vector format; the rest are raster.
const (
	PNG Format = iota
	JPEG
	GIF
	WebP
	ICO
	TIFF
	SVG
)

// DefaultFormat is the format callers apply when the client supplies none.
const DefaultFormat = PNG

var formatInfo = [...]struct {
	name        string
	contentType string
}{
	PNG:  {"png", "image/png"},
	JPEG: {"jpeg", "image/jpeg"},
	GIF:  {"gif", "image/gif"},
	WebP: {"webp", "image/webp"},
	ICO:  {"ico", "image/x-icon"},
	TIFF: {"tiff", "image/tiff"},
	SVG:  {"svg", "image/svg+xml"},
}

var formatsByToken = map[string]Format{
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"webp": WebP,
	"ico":  ICO,
	"tif":  TIFF,
	"tiff": TIFF,
	"svg":  SVG,
}

// String returns the canonical extension of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatInfo) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatInfo[f].name
}

// ContentType returns the MIME type of the encoded output.
func (f Format) ContentType() string {
	if f < 0 || int(f) >= len(formatInfo) {
		return "application/octet-stream"
	}
	return formatInfo[f].contentType
}

// IsVector reports whether the format produces markup rather than pixels.
func (f Format) IsVector() bool {
	return f == SVG
}

// ResolveFormat maps a file-extension-like token ("png", ".JPG", "svg") to a
// Format. Matching is case-insensitive and a leading dot is ignored.
//
// # Errors
//
//   - ErrUnsupportedFormat: a recognized image extension that is not served
//   - ErrInvalidFormat: anything else
func ResolveFormat(token string) (Format, error) {
	ext := strings.TrimPrefix(cases.Fold().String(strings.TrimSpace(token)), ".")
	if f, ok := formatsByToken[ext]; ok {
		return f, nil
	}

	if _, err := imaging.FormatFromExtension(ext); err == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, token)
}
