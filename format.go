package imgprobe

// Format is one of the container formats recognized by Detect.
type Format uint8

// Formats in detection order.
const (
	JPEG Format = iota
	PNG
	GIF
	BMP
	WEBP
	SVG
)

var formatNames = [...]string{
	JPEG: "jpeg",
	PNG:  "png",
	GIF:  "gif",
	BMP:  "bmp",
	WEBP: "webp",
	SVG:  "svg",
}

var formatMIMETypes = [...]string{
	JPEG: "image/jpeg",
	PNG:  "image/png",
	GIF:  "image/gif",
	BMP:  "image/bmp",
	WEBP: "image/webp",
	SVG:  "image/svg+xml",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// MIMEType returns the media type of f, or "application/octet-stream"
// for values outside the enumeration.
func (f Format) MIMEType() string {
	if int(f) < len(formatMIMETypes) {
		return formatMIMETypes[f]
	}
	return "application/octet-stream"
}

// Size is the pixel size of an image as stored in its header.
type Size struct {
	Width  uint32
	Height uint32
}
