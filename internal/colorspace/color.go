package colorspace

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is the canonical representation of a color with 8-bit components.
//
// Every other model in this package is derived from an RGB value, so two equal
// RGB values always produce identical derived values.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA returns the color as a fully opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// unit returns the color with components scaled to [0, 1].
func (c RGB) unit() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// CMYK represents a color in the subtractive CMYK model.
//
// All components are fractions in [0, 1].
type CMYK struct {
	C float64 `json:"c"` // Cyan
	M float64 `json:"m"` // Magenta
	Y float64 `json:"y"` // Yellow
	K float64 `json:"k"` // Key (black)
}

// HSV represents a color in the HSV (Hue, Saturation, Value) model.
type HSV struct {
	H float64 `json:"h"` // Hue: 0-360 degrees, exclusive of 360
	S float64 `json:"s"` // Saturation: 0-1
	V float64 `json:"v"` // Value: 0-1
}

// HSL represents a color in the HSL (Hue, Saturation, Lightness) model.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees, exclusive of 360
	S float64 `json:"s"` // Saturation: 0-1
	L float64 `json:"l"` // Lightness: 0-1
}

// OKLab represents a color in the perceptually uniform OKLab space.
type OKLab struct {
	L float64 `json:"l"` // Perceived lightness, roughly 0-1
	A float64 `json:"a"` // Green-red axis
	B float64 `json:"b"` // Blue-yellow axis
}

// OKLCh is the polar form of OKLab.
type OKLCh struct {
	L float64 `json:"l"` // Lightness, identical to OKLab.L
	C float64 `json:"c"` // Chroma, always >= 0
	H float64 `json:"h"` // Hue: 0-360 degrees, exclusive of 360
}
