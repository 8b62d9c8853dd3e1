package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
)

// icoHeader is the ICONDIR structure followed by a single ICONDIRENTRY.
type icoHeader struct {
	Reserved   uint16
	Type       uint16 // 1 = icon
	Count      uint16
	Width      uint8 // 0 means 256
	Height     uint8 // 0 means 256
	ColorCount uint8
	Reserved2  uint8
	Planes     uint16
	BitCount   uint16
	Size       uint32 // Length of the embedded image
	Offset     uint32 // Start of the embedded image
}

const icoHeaderSize = 6 + 16

// icoMaxDimension is the largest side a directory entry can record.
const icoMaxDimension = 256

// encodeICO writes img as a single-entry icon with a PNG payload, which every
// ICO reader since Windows Vista accepts at any size.
func encodeICO(w io.Writer, img image.Image) error {
	var payload bytes.Buffer
	if err := png.Encode(&payload, img); err != nil {
		return fmt.Errorf("encode icon payload: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > icoMaxDimension || b.Dy() > icoMaxDimension {
		return fmt.Errorf("icon %dx%d exceeds %d pixels per side", b.Dx(), b.Dy(), icoMaxDimension)
	}
	hdr := icoHeader{
		Type:     1,
		Count:    1,
		Width:    icoDimension(b.Dx()),
		Height:   icoDimension(b.Dy()),
		Planes:   1,
		BitCount: 32,
		Size:     uint32(payload.Len()),
		Offset:   icoHeaderSize,
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("write icon header: %w", err)
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return fmt.Errorf("write icon payload: %w", err)
	}
	return nil
}

func icoDimension(v int) uint8 {
	if v >= icoMaxDimension {
		return 0
	}
	return uint8(v)
}
