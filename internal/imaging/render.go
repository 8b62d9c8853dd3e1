package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/colorpeek/internal/colorspace"
)

const jpegQuality = 95

// RenderedImage is an encoded image ready to be returned to a client.
type RenderedImage struct {
	ContentType string `json:"mime_type"` // MIME type matching Data
	Format      Format `json:"-"`         // Encoding used
	Size        Size   `json:"size"`      // Dimensions after clamping
	Data        []byte `json:"-"`         // Encoded bytes
}

// RenderError reports an encoder failure on an otherwise valid request. It is
// a server-side error, unlike the parse and format errors.
type RenderError struct {
	Format Format
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Render produces a solid image of color c.
//
// Raster formats fill a Height x Width pixel buffer and encode it; SVG emits a
// single full-canvas rectangle filled with c.Hex(). Dimensions are clamped the
// same way ParseSize clamps them. ICO is further capped at 256 pixels per
// side, the largest size an icon directory entry can describe.
//
// Encoder failures, including panics inside an encoder, are returned as
// *RenderError.
func Render(c colorspace.RGB, size Size, format Format) (*RenderedImage, error) {
	size = size.clamped()
	if format == ICO {
		size = Size{Height: min(size.Height, icoMaxDimension), Width: min(size.Width, icoMaxDimension)}
	}
	out := &RenderedImage{
		ContentType: format.ContentType(),
		Format:      format,
		Size:        size,
	}

	if format.IsVector() {
		out.Data = renderSVG(c, size)
		return out, nil
	}

	data, err := encode(Fill(size, c), format)
	if err != nil {
		return nil, err
	}
	out.Data = data
	return out, nil
}

// encode runs the raster encoder for format, turning any failure into a
// *RenderError.
func encode(img *image.NRGBA, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeRaster(&buf, img, format); err != nil {
		return nil, &RenderError{Format: format, Err: err}
	}
	return buf.Bytes(), nil
}

func encodeRaster(w io.Writer, img *image.NRGBA, format Format) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("encoder panic: %v", r)
		}
	}()

	switch format {
	case PNG:
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestSpeed))
	case JPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	case GIF:
		return imaging.Encode(w, img, imaging.GIF,
			imaging.GIFQuantizer(solidQuantizer{}),
			imaging.GIFDrawer(draw.Src))
	case TIFF:
		return imaging.Encode(w, img, imaging.TIFF)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case ICO:
		return encodeICO(w, img)
	default:
		return fmt.Errorf("no raster encoder for %s", format)
	}
}

// solidQuantizer builds a GIF palette from the top-left pixel, which is exact
// for the single-color images produced by Fill.
type solidQuantizer struct{}

func (solidQuantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	b := m.Bounds()
	return append(p, color.NRGBAModel.Convert(m.At(b.Min.X, b.Min.Y)))
}
