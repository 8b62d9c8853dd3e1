// Package imaging renders solid-color preview images.
//
// A preview is described by three things: a color (colorspace.RGB), a Size
// and a Format. Render turns them into encoded bytes plus the MIME type the
// caller should send with them.
//
// # Size Convention
//
// Size tokens have the form "HEIGHTxWIDTH". The first number is the number of
// rows (image.Rectangle.Dy), the second the number of columns (Dx). The same
// convention applies to SVG output, whose width attribute is Size.Width.
//
// Each dimension is clamped into [1, 500]. Tokens that cannot be parsed are
// rejected with ErrInvalidSize; there is no silent fallback to a default.
//
// # Formats
//
// Raster formats are PNG, JPEG, GIF, WebP (lossless), ICO (PNG payload) and
// TIFF. SVG is the only vector format. ResolveFormat distinguishes tokens that
// are not image extensions at all (ErrInvalidFormat) from recognized formats
// that are not produced, such as BMP (ErrUnsupportedFormat).
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use. Fill splits the
// pixel buffer by rows across goroutines and returns only after all rows are
// written.
//
// # Error Handling
//
// Client mistakes (size, format) are returned as wrapped sentinel errors.
// Encoder failures are returned as *RenderError and should be reported as
// server-side failures.
package imaging
