package colorspace

import (
	"errors"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Parse failure reasons. A *ParseError returned by Parse wraps exactly one of these.
var (
	ErrEmpty               = errors.New("empty string")
	ErrInvalidFunction     = errors.New("invalid CSS function")
	ErrUnknown             = errors.New("unknown")
	ErrInvalidHex          = errors.New("invalid hex value")
	ErrInvalidName         = errors.New("invalid color name")
	ErrInvalidAbbreviation = errors.New("invalid abbreviation")
)

// ParseError reports a color token that could not be resolved.
type ParseError struct {
	Token string // The token as supplied by the caller
	Err   error  // One of the Err* sentinels
}

// Error returns the short reason only; the token is available separately.
func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse resolves a color token to its canonical RGB value.
//
// Resolution order:
//  1. Functional notation: anything containing parentheses
//  2. "#" followed by 3, 4, 6 or 8 hex digits
//  3. CSS color names
//  4. Bare 3, 4, 6 or 8 hex digits
//
// Tokens are matched case-insensitively and surrounding whitespace is ignored.
func Parse(token string) (RGB, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return RGB{}, &ParseError{Token: token, Err: ErrEmpty}
	}
	// Folding non-ASCII input can produce hex digits (e.g. the "ff" ligature).
	if !isASCII(s) {
		return RGB{}, &ParseError{Token: token, Err: ErrUnknown}
	}
	s = cases.Fold().String(s)

	var (
		c   RGB
		err error
	)
	switch {
	case strings.ContainsAny(s, "()"):
		c, err = parseFunction(s)
	case strings.HasPrefix(s, "#"):
		c, err = parseHex(s[1:])
	default:
		c, err = parseBare(s)
	}
	if err != nil {
		return RGB{}, &ParseError{Token: token, Err: err}
	}
	return c, nil
}

// extraNames holds CSS Color Level 4 names missing from the SVG 1.1 table.
var extraNames = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

func parseBare(s string) (RGB, error) {
	nc, ok := colornames.Map[s]
	if !ok {
		nc, ok = extraNames[s]
	}
	if ok {
		return RGB{R: nc.R, G: nc.G, B: nc.B}, nil
	}

	switch {
	case isHexDigits(s):
		return parseHex(s)
	case isLetters(s):
		return RGB{}, ErrInvalidName
	case isAlphanumeric(s):
		return RGB{}, ErrInvalidHex
	default:
		return RGB{}, ErrUnknown
	}
}

// parseHex decodes the digits of a hex color without the leading "#".
func parseHex(digits string) (RGB, error) {
	if !isHexDigits(digits) && digits != "" {
		return RGB{}, ErrInvalidHex
	}

	var six string
	switch len(digits) {
	case 3, 4:
		// "#RGB" and "#RGBA" double each digit
		six = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6, 8:
		six = digits[:6]
	default:
		return RGB{}, ErrInvalidAbbreviation
	}

	col, err := colorful.Hex("#" + six)
	if err != nil {
		return RGB{}, ErrInvalidHex
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// parseFunction handles rgb(), rgba(), hsl() and hsla().
func parseFunction(s string) (RGB, error) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") || strings.Count(s, "(") != 1 || strings.Count(s, ")") != 1 {
		return RGB{}, ErrInvalidFunction
	}

	name := strings.TrimSpace(s[:open])
	args, ok := splitArgs(s[open+1 : len(s)-1])
	if !ok {
		return RGB{}, ErrInvalidFunction
	}

	switch name {
	case "rgb", "rgba":
		return rgbFromArgs(args)
	case "hsl", "hsla":
		return hslFromArgs(args)
	default:
		return RGB{}, ErrInvalidFunction
	}
}

// splitArgs splits function arguments in either the legacy comma syntax
// "1, 2, 3[, a]" or the space syntax "1 2 3[ / a]". The alpha argument is
// validated and dropped.
func splitArgs(body string) ([]string, bool) {
	body = strings.TrimSpace(body)

	if strings.Contains(body, ",") {
		if strings.Contains(body, "/") {
			return nil, false
		}
		parts := strings.Split(body, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
			if parts[i] == "" {
				return nil, false
			}
		}
		switch len(parts) {
		case 3:
			return parts, true
		case 4:
			if _, ok := parseAlpha(parts[3]); !ok {
				return nil, false
			}
			return parts[:3], true
		default:
			return nil, false
		}
	}

	main, alpha, hasAlpha := strings.Cut(body, "/")
	parts := strings.Fields(main)
	if len(parts) != 3 {
		return nil, false
	}
	if hasAlpha {
		if _, ok := parseAlpha(strings.TrimSpace(alpha)); !ok {
			return nil, false
		}
	}
	return parts, true
}

func rgbFromArgs(args []string) (RGB, error) {
	var ch [3]uint8
	for i, arg := range args {
		v, ok := parseChannel(arg)
		if !ok {
			return RGB{}, ErrInvalidFunction
		}
		ch[i] = v
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func hslFromArgs(args []string) (RGB, error) {
	h, ok := parseHue(args[0])
	if !ok {
		return RGB{}, ErrInvalidFunction
	}
	s, ok := parseFraction(args[1])
	if !ok {
		return RGB{}, ErrInvalidFunction
	}
	l, ok := parseFraction(args[2])
	if !ok {
		return RGB{}, ErrInvalidFunction
	}

	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// parseChannel reads an rgb() component: a number in 0-255 or a percentage,
// rounded and clamped.
func parseChannel(arg string) (uint8, bool) {
	p, percent := strings.CutSuffix(arg, "%")
	f, ok := parseNumber(p)
	if !ok {
		return 0, false
	}
	if percent {
		f = f * 255 / 100
	}
	return uint8(clamp(math.Round(f), 0, 255)), true
}

// parseHue reads an angle in degrees, with or without a "deg" suffix, and
// normalizes it into [0, 360).
func parseHue(arg string) (float64, bool) {
	arg = strings.TrimSuffix(arg, "deg")
	f, ok := parseNumber(arg)
	if !ok {
		return 0, false
	}
	f = math.Mod(f, 360)
	if f < 0 {
		f += 360
	}
	return f, true
}

// parseFraction reads an hsl() saturation or lightness. Both "50%" and "50"
// mean one half.
func parseFraction(arg string) (float64, bool) {
	f, ok := parseNumber(strings.TrimSuffix(arg, "%"))
	if !ok {
		return 0, false
	}
	return clamp(f/100, 0, 1), true
}

// parseAlpha reads an alpha value given as a number in [0, 1] or a percentage.
func parseAlpha(arg string) (float64, bool) {
	if p, ok := strings.CutSuffix(arg, "%"); ok {
		f, ok := parseNumber(p)
		return clamp(f/100, 0, 1), ok
	}
	f, ok := parseNumber(arg)
	return clamp(f, 0, 1), ok
}

// cssNumber is the CSS <number> grammar. strconv alone would also take hex
// floats, underscores, "inf" and "nan".
var cssNumber = regexp.MustCompile(`^[+-]?(\d+|\d*\.\d+)([eE][+-]?\d+)?$`)

func parseNumber(s string) (float64, bool) {
	if !cssNumber.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'z') {
			return false
		}
	}
	return true
}
