package imaging

import (
	"errors"
	"testing"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		token       string
		want        Format
		contentType string
	}{
		{"png", PNG, "image/png"},
		{"PNG", PNG, "image/png"},
		{".png", PNG, "image/png"},
		{"jpg", JPEG, "image/jpeg"},
		{"jpeg", JPEG, "image/jpeg"},
		{"gif", GIF, "image/gif"},
		{"webp", WebP, "image/webp"},
		{"ico", ICO, "image/x-icon"},
		{"tif", TIFF, "image/tiff"},
		{"tiff", TIFF, "image/tiff"},
		{"svg", SVG, "image/svg+xml"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ResolveFormat(tt.token)
			if err != nil {
				t.Fatalf("ResolveFormat(%q) failed: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ResolveFormat(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if ct := got.ContentType(); ct != tt.contentType {
				t.Errorf("ContentType() = %s, want %s", ct, tt.contentType)
			}
		})
	}
}

func TestResolveFormat_Errors(t *testing.T) {
	tests := []struct {
		token   string
		wantErr error
	}{
		{"bmp", ErrUnsupportedFormat},
		{"BMP", ErrUnsupportedFormat},
		{"", ErrInvalidFormat},
		{"exe", ErrInvalidFormat},
		{"png8", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := ResolveFormat(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ResolveFormat(%q) error = %v, want %v", tt.token, err, tt.wantErr)
			}
		})
	}
}

func TestFormat_IsVector(t *testing.T) {
	for f := PNG; f <= SVG; f++ {
		if got, want := f.IsVector(), f == SVG; got != want {
			t.Errorf("%v.IsVector() = %v, want %v", f, got, want)
		}
	}
}

func TestFormat_StringOutOfRange(t *testing.T) {
	if got := Format(42).String(); got != "Format(42)" {
		t.Errorf("String() = %s, want Format(42)", got)
	}
	if got := Format(-1).ContentType(); got != "application/octet-stream" {
		t.Errorf("ContentType() = %s", got)
	}
}
