package imgprobe

import (
	"io"

	"github.com/pkg/errors"
)

// DecodeReader reads r to EOF and decodes the result. Use DecodeLimitReader
// for input of untrusted length.
func DecodeReader(r io.Reader) (Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Image{}, errors.Wrap(err, "imgprobe: read")
	}
	return Decode(b)
}

// ErrTooLarge is returned by DecodeLimitReader for input longer than its
// limit.
var ErrTooLarge = errors.New("imgprobe: input too large")

// DecodeLimitReader is like DecodeReader but fails with ErrTooLarge instead
// of reading more than limit bytes.
func DecodeLimitReader(r io.Reader, limit int64) (Image, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return Image{}, errors.Wrap(err, "imgprobe: read")
	}
	if int64(len(b)) > limit {
		return Image{}, ErrTooLarge
	}
	return Decode(b)
}
