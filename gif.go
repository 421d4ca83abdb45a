package imgprobe

// gifHeaderLen covers the "GIF87a"/"GIF89a" header and the logical screen
// width and height.
const gifHeaderLen = 10

func decodegif(b []byte) (Size, error) {
	if len(b) < gifHeaderLen {
		return Size{}, errTruncated
	}
	return Size{
		Width:  uint32(readUint16(b[6:8])),
		Height: uint32(readUint16(b[8:10])),
	}, nil
}
