package imaging

import (
	"fmt"

	"github.com/ironsheep/colorpeek/internal/colorspace"
)

// renderSVG returns a document holding one rectangle that covers the canvas.
func renderSVG(c colorspace.RGB, size Size) []byte {
	size = size.clamped()
	return fmt.Appendf(nil,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect x="0" y="0" width="%d" height="%d" fill="%s"/></svg>`,
		size.Width, size.Height, size.Width, size.Height,
		size.Width, size.Height, c.Hex())
}
