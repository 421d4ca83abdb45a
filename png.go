package imgprobe

import "encoding/binary"

// The IHDR chunk always directly follows the 8 byte signature. Its width
// and height come right after the chunk length and type.
const pngHeaderLen = 24

func decodepng(b []byte) (Size, error) {
	if len(b) < pngHeaderLen {
		return Size{}, errTruncated
	}
	return Size{
		Width:  binary.BigEndian.Uint32(b[16:20]),
		Height: binary.BigEndian.Uint32(b[20:24]),
	}, nil
}
