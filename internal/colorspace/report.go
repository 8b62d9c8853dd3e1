package colorspace

// Report bundles one color in every supported model.
//
// All fields are computed from RGB by NewReport. A Report is a plain value;
// copies never share state.
type Report struct {
	Hex   string `json:"hex"`   // Canonical "#RRGGBB"
	RGB   RGB    `json:"rgb"`   // Canonical components
	CMYK  CMYK   `json:"cmyk"`  // Derived CMYK
	HSV   HSV    `json:"hsv"`   // Derived HSV
	HSL   HSL    `json:"hsl"`   // Derived HSL
	OKLab OKLab  `json:"oklab"` // Derived OKLab
	OKLCh OKLCh  `json:"oklch"` // Polar form of OKLab
}

// NewReport derives every color model from c.
func NewReport(c RGB) Report {
	lab := ToOKLab(c)
	return Report{
		Hex:   c.Hex(),
		RGB:   c,
		CMYK:  ToCMYK(c),
		HSV:   ToHSV(c),
		HSL:   ToHSL(c),
		OKLab: lab,
		OKLCh: lab.LCh(),
	}
}

// Describe parses token and builds its report.
func Describe(token string) (Report, error) {
	c, err := Parse(token)
	if err != nil {
		return Report{}, err
	}
	return NewReport(c), nil
}
