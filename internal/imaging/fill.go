package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/colorpeek/internal/colorspace"
)

// Fill allocates a Height x Width image with every pixel set to c.
//
// Rows are filled concurrently. Every goroutine writes a disjoint range of rows
// with the same value, so no synchronization is needed beyond the join that
// parallel.Line performs before returning.
func Fill(size Size, c colorspace.RGB) *image.NRGBA {
	size = size.clamped()
	img := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	px := [4]uint8{c.R, c.G, c.B, 0xff}
	rowLen := size.Width * 4

	parallel.Line(size.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := img.Pix[y*img.Stride : y*img.Stride+rowLen]
			for i := 0; i < rowLen; i += 4 {
				copy(row[i:i+4], px[:])
			}
		}
	})

	return img
}
