package imgprobe

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedFormat means that no known signature matched the input.
	ErrUnsupportedFormat = errors.New("imgprobe: unsupported format")
	// ErrDimensionDecodeFailed means that the format was recognized but its
	// header could not be parsed. Errors returned by Decode for this case are
	// of type *DimensionError.
	ErrDimensionDecodeFailed = errors.New("imgprobe: dimension decode failed")
)

var (
	errTruncated  = errors.New("truncated header")
	errJPEGMarker = errors.New("invalid marker")
	errNoSOF      = errors.New("no start of frame marker")
	errWebPChunk  = errors.New("unknown chunk")
	errSVGText    = errors.New("not valid utf-8 text")
	errSVGSize    = errors.New("no viewBox or width/height attributes")
)

// DimensionError is returned by Decode when the format of the input was
// detected but its size could not be read.
type DimensionError struct {
	Format Format
	Err    error
}

func (e *DimensionError) Error() string {
	return ErrDimensionDecodeFailed.Error() + ": " + e.Format.String() + ": " + e.Err.Error()
}

func (e *DimensionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDimensionDecodeFailed) hold for any *DimensionError.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionDecodeFailed
}
