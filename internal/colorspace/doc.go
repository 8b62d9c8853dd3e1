// Package colorspace parses color tokens and re-expresses them in other color models.
//
// Every color enters the package through Parse, which resolves a user supplied
// token to a canonical 8-bit RGB value. All other representations are derived
// from that value by pure functions; nothing here holds state, so every
// function is safe for concurrent use.
//
// # Accepted Tokens
//
// Parse accepts, case-insensitively:
//   - Hex: "#RRGGBB" or bare "RRGGBB", plus the 3, 4 and 8 digit forms
//     ("#RGB", "#RGBA", "#RRGGBBAA"). Alpha digits are validated and dropped.
//   - CSS named colors: "tomato", "steelblue", ... (the SVG 1.1 table plus
//     "rebeccapurple")
//   - CSS functions: rgb(), rgba(), hsl(), hsla() in comma or space syntax,
//     e.g. "rgb(255, 0, 0)", "rgb(100% 0% 0% / 50%)", "hsl(120deg 100% 50%)".
//     Arguments are plain decimal numbers, optionally with an exponent.
//
// Tokens containing non-ASCII characters are rejected with ErrUnknown.
//
// # Color Models
//
// Derived models use fractions rather than percentages:
//   - CMYK: c, m, y, k in [0, 1]
//   - HSV, HSL: hue in degrees [0, 360), the remaining components in [0, 1]
//   - OKLab: L roughly in [0, 1], a and b unbounded opponent axes
//   - OKLCh: L from OKLab, chroma >= 0, hue in degrees [0, 360)
//
// OKLab uses Björn Ottosson's reference matrices applied to linear-light sRGB.
//
// # Errors
//
// Parse failures are returned as *ParseError wrapping one of the sentinel
// errors (ErrEmpty, ErrInvalidFunction, ErrUnknown, ErrInvalidHex,
// ErrInvalidName, ErrInvalidAbbreviation). The message of a ParseError is the
// short message of its sentinel, suitable for returning to a client verbatim.
package colorspace
