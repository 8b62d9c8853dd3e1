package service

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strings"
	"testing"

	"github.com/ironsheep/colorpeek/internal/colorspace"
	"github.com/ironsheep/colorpeek/internal/imaging"
)

func TestDescribeColor(t *testing.T) {
	r, err := DescribeColor("FF0000")
	if err != nil {
		t.Fatalf("DescribeColor failed: %v", err)
	}
	if r.RGB != (colorspace.RGB{R: 255}) {
		t.Errorf("RGB = %+v, want (255,0,0)", r.RGB)
	}
	if r.CMYK != (colorspace.CMYK{M: 1, Y: 1}) {
		t.Errorf("CMYK = %+v, want (0,1,1,0)", r.CMYK)
	}
}

func TestDescribeColor_Empty(t *testing.T) {
	_, err := DescribeColor("")
	if !errors.Is(err, colorspace.ErrEmpty) {
		t.Fatalf("error = %v, want ErrEmpty", err)
	}
	if err.Error() != "empty string" {
		t.Errorf("message = %q, want %q", err.Error(), "empty string")
	}
	if !IsClientError(err) {
		t.Error("empty color should be a client error")
	}
}

func TestRenderImage_PNG(t *testing.T) {
	out, err := RenderImage("FF0000", "100x50", "png")
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if out.ContentType != "image/png" {
		t.Errorf("ContentType = %s, want image/png", out.ContentType)
	}

	img, err := png.Decode(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	b := img.Bounds()
	if b.Dy() != 100 || b.Dx() != 50 {
		t.Fatalf("got %d rows x %d columns, want 100x50", b.Dy(), b.Dx())
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r>>8 != 255 || g != 0 || bl != 0 || a>>8 != 255 {
				t.Fatalf("pixel (%d,%d) = %d,%d,%d,%d", x, y, r>>8, g>>8, bl>>8, a>>8)
			}
		}
	}
}

func TestRenderImage_Defaults(t *testing.T) {
	out, err := RenderImage("navy", "", "")
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if out.Format != imaging.PNG {
		t.Errorf("Format = %v, want png", out.Format)
	}
	if out.Size != (imaging.Size{Height: 128, Width: 128}) {
		t.Errorf("Size = %+v, want 128x128", out.Size)
	}
}

func TestRenderImage_SVG(t *testing.T) {
	out, err := RenderImage("rgb(1, 2, 3)", "20x30", "svg")
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if out.ContentType != "image/svg+xml" {
		t.Errorf("ContentType = %s, want image/svg+xml", out.ContentType)
	}

	svg := string(out.Data)
	for _, want := range []string{`fill="#010203"`, `width="30"`, `height="20"`, "<rect"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %s:\n%s", want, svg)
		}
	}
}

func TestRenderImage_ClampedSize(t *testing.T) {
	out, err := RenderImage("fff", "0x600", "png")
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if out.Size != (imaging.Size{Height: 1, Width: 500}) {
		t.Errorf("Size = %+v, want height 1 width 500", out.Size)
	}
}

func TestRenderImage_Errors(t *testing.T) {
	tests := []struct {
		name                string
		color, size, format string
		wantErr             error
	}{
		{"unsupported format", "FF0000", "10x10", "bmp", imaging.ErrUnsupportedFormat},
		{"invalid format", "FF0000", "10x10", "docx", imaging.ErrInvalidFormat},
		{"bad size", "FF0000", "big", "png", imaging.ErrInvalidSize},
		{"empty color", "", "10x10", "png", colorspace.ErrEmpty},
		{"bad color", "#xyz", "10x10", "png", colorspace.ErrInvalidHex},
		{"format checked first", "", "big", "bmp", imaging.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderImage(tt.color, tt.size, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !IsClientError(err) {
				t.Errorf("%v should be a client error", err)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if IsClientError(nil) {
		t.Error("nil is not a client error")
	}

	renderErr := fmt.Errorf("wrapped: %w", &imaging.RenderError{Format: imaging.PNG, Err: errors.New("boom")})
	if IsClientError(renderErr) {
		t.Error("RenderError should be a server error")
	}
}
