// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgprobe

func readUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func readUint24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func readUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// decodebmp reads the size from the DIB header that follows the 14 byte
// file header. BITMAPINFOHEADER and its V4/V5 extensions all start with the
// header length followed by 32 bit width and height.
func decodebmp(b []byte) (Size, error) {
	const (
		fileHeaderLen = 14
		sizeEnd       = fileHeaderLen + 4 + 8
	)
	if len(b) < sizeEnd {
		return Size{}, errTruncated
	}
	// The height is signed in the format (negative means top-down rows) but
	// is reported here as the raw unsigned value.
	return Size{
		Width:  readUint32(b[18:22]),
		Height: readUint32(b[22:26]),
	}, nil
}
