package imgprobe

import "encoding/binary"

const (
	sof0Marker = 0xc0 // Start Of Frame (Baseline Sequential).
	sof2Marker = 0xc2 // Start Of Frame (Progressive).
)

// decodejpeg walks the marker segments after the SOI marker until it finds
// a baseline or progressive SOF segment.
//
// Each segment is laid out as
//
//	0xff <marker> <length:2> <payload:length-2>
//
// and a SOF payload starts with the sample precision (1 byte), then height
// and width (2 bytes each, big-endian).
func decodejpeg(b []byte) (Size, error) {
	offset := 2
	for offset < len(b) {
		if b[offset] != 0xff {
			return Size{}, errJPEGMarker
		}
		if offset+1 >= len(b) {
			return Size{}, errTruncated
		}
		switch b[offset+1] {
		case sof0Marker, sof2Marker:
			if offset+8 >= len(b) {
				return Size{}, errTruncated
			}
			return Size{
				Width:  uint32(binary.BigEndian.Uint16(b[offset+7 : offset+9])),
				Height: uint32(binary.BigEndian.Uint16(b[offset+5 : offset+7])),
			}, nil
		}
		if offset+3 >= len(b) {
			return Size{}, errTruncated
		}
		offset += 2 + int(binary.BigEndian.Uint16(b[offset+2:offset+4]))
	}
	return Size{}, errNoSOF
}
