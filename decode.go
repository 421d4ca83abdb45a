// Package imgprobe identifies JPEG, PNG, GIF, BMP, WEBP and SVG images by
// their leading signature and reads their pixel size from the header,
// without decoding any pixel data.
//
// All functions work on a complete in-memory copy of the file and are safe
// for concurrent use.
package imgprobe

// Image is the result of a successful Decode.
type Image struct {
	Format Format
	Size
	// Data is the buffer passed to Decode. It is not copied.
	Data []byte
}

// decodeSize reads the size of a buffer already known to be in format f.
func decodeSize(f Format, b []byte) (Size, error) {
	switch f {
	case JPEG:
		return decodejpeg(b)
	case PNG:
		return decodepng(b)
	case GIF:
		return decodegif(b)
	case BMP:
		return decodebmp(b)
	case WEBP:
		return decodewebp(b)
	case SVG:
		return decodesvg(b)
	}
	return Size{}, ErrUnsupportedFormat
}

// Decode detects the format of b and reads its size.
//
// It returns ErrUnsupportedFormat if no signature matches, or a
// *DimensionError (matching ErrDimensionDecodeFailed) if the header cannot
// be parsed.
func Decode(b []byte) (Image, error) {
	f, ok := Detect(b)
	if !ok {
		return Image{}, ErrUnsupportedFormat
	}
	sz, err := decodeSize(f, b)
	if err != nil {
		return Image{}, &DimensionError{Format: f, Err: err}
	}
	return Image{Format: f, Size: sz, Data: b}, nil
}

// DecodeSize is like Decode but returns the size and format separately.
func DecodeSize(b []byte) (Size, Format, error) {
	img, err := Decode(b)
	return img.Size, img.Format, err
}
