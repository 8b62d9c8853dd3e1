package imaging

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dimension limits applied to every rendered image.
const (
	MinDimension = 1
	MaxDimension = 500
)

// DefaultSizeToken is the size callers apply when the client supplies none.
const DefaultSizeToken = "128x128"

// ErrInvalidSize is wrapped by every ParseSize failure.
var ErrInvalidSize = errors.New("invalid size qualifier")

// Size holds the dimensions of an image in pixels.
type Size struct {
	Height int `json:"height"` // Rows, first number of the token
	Width  int `json:"width"`  // Columns, second number of the token
}

// String formats the size back into token form, "HEIGHTxWIDTH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Height, s.Width)
}

// ParseSize parses a "HEIGHTxWIDTH" token.
//
// Both halves must be base-10 integers separated by a single lowercase "x".
// Values outside [MinDimension, MaxDimension] are clamped rather than
// rejected, so "0x600" yields a height of 1 and a width of 500.
//
// # Errors
//
//   - Returns ErrInvalidSize if the separator is missing
//   - Returns ErrInvalidSize if either half is not an integer
func ParseSize(token string) (Size, error) {
	h, w, ok := strings.Cut(token, "x")
	if !ok {
		return Size{}, fmt.Errorf("%w %q: expected HEIGHTxWIDTH", ErrInvalidSize, token)
	}

	height, err := strconv.Atoi(h)
	if err != nil {
		return Size{}, fmt.Errorf("%w %q: bad height", ErrInvalidSize, token)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Size{}, fmt.Errorf("%w %q: bad width", ErrInvalidSize, token)
	}

	return Size{Height: height, Width: width}.clamped(), nil
}

func (s Size) clamped() Size {
	return Size{
		Height: clampDimension(s.Height),
		Width:  clampDimension(s.Width),
	}
}

func clampDimension(v int) int {
	return max(MinDimension, min(MaxDimension, v))
}
