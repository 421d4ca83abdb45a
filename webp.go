package imgprobe

// fourCC is a four character code.
type fourCC [4]byte

var (
	fccVP8  = fourCC{'V', 'P', '8', ' '}
	fccVP8L = fourCC{'V', 'P', '8', 'L'}
	fccVP8X = fourCC{'V', 'P', '8', 'X'}
)

// webpHeaderLen covers the RIFF header, the first chunk header and enough
// of the chunk payload for all three layouts below.
const webpHeaderLen = 30

// decodewebp reads the canvas size from the first chunk of a RIFF WEBP
// file, whose tag sits at offset 12.
func decodewebp(b []byte) (Size, error) {
	if len(b) < webpHeaderLen {
		return Size{}, errTruncated
	}
	tag := fourCC{b[12], b[13], b[14], b[15]}
	switch tag {
	case fccVP8X:
		// Canvas width and height minus one, 24 bits each.
		return Size{
			Width:  readUint24(b[22:25]) + 1,
			Height: readUint24(b[25:28]) + 1,
		}, nil
	case fccVP8:
		// The top two bits of each field are the scaling code.
		return Size{
			Width:  uint32(readUint16(b[26:28]) & 0x3fff),
			Height: uint32(readUint16(b[28:30]) & 0x3fff),
		}, nil
	case fccVP8L:
		// 14 bit width minus one, then 14 bit height minus one.
		bits := readUint32(b[18:22])
		return Size{
			Width:  bits&0x3fff + 1,
			Height: (bits>>14)&0x3fff + 1,
		}, nil
	}
	return Size{}, errWebPChunk
}
