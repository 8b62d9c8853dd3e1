package colorspace

import "math"

// ToCMYK converts an RGB color to CMYK.
//
// The key is 1 - max(r, g, b) with components normalized to [0, 1]. Pure black
// has a key of 1 and zero cyan, magenta and yellow.
func ToCMYK(c RGB) CMYK {
	u := c.unit()
	k := 1 - math.Max(math.Max(u.R, u.G), u.B)
	if k == 1 {
		return CMYK{K: 1}
	}

	return CMYK{
		C: (1 - u.R - k) / (1 - k),
		M: (1 - u.G - k) / (1 - k),
		Y: (1 - u.B - k) / (1 - k),
		K: k,
	}
}

// ToHSV converts an RGB color to HSV. Grays have hue 0 and saturation 0.
func ToHSV(c RGB) HSV {
	h, s, v := c.unit().Hsv()
	return HSV{H: wrapHue(h), S: s, V: v}
}

// ToHSL converts an RGB color to HSL. Grays have hue 0 and saturation 0.
func ToHSL(c RGB) HSL {
	h, s, l := c.unit().Hsl()
	return HSL{H: wrapHue(h), S: s, L: l}
}

// ToOKLab converts an RGB color to OKLab.
//
// The conversion follows the reference transform:
//  1. Linearize each sRGB component (inverse transfer function)
//  2. Linear RGB -> LMS cone response
//  3. Cube root of each LMS component
//  4. LMS' -> Lab
func ToOKLab(c RGB) OKLab {
	r, g, b := c.unit().LinearRgb()

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l, m, s = math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	return OKLab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// LCh converts the color to its polar form.
func (lab OKLab) LCh() OKLCh {
	h := math.Atan2(lab.B, lab.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}

	return OKLCh{
		L: lab.L,
		C: math.Sqrt(lab.A*lab.A + lab.B*lab.B),
		H: wrapHue(h),
	}
}

// ToOKLCh converts an RGB color to OKLCh.
func ToOKLCh(c RGB) OKLCh {
	return ToOKLab(c).LCh()
}

// wrapHue maps hue into [0, 360). Adding 360 to a tiny negative angle rounds to
// exactly 360, which belongs at 0.
func wrapHue(h float64) float64 {
	if h >= 360 {
		h -= 360
	}
	if h < 0 || math.IsNaN(h) {
		return 0
	}
	return h
}
