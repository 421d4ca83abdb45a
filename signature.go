package imgprobe

// A signature is the fixed byte prefix that identifies a format.
type signature struct {
	format Format
	magic  string
}

// signatures is tried in order by Detect. None of the entries is a prefix
// of another, but the order is kept fixed so detection is deterministic.
var signatures = [...]signature{
	{JPEG, "\xff\xd8\xff"},
	{PNG, "\x89PNG\r\n\x1a\n"},
	{GIF, "GIF8"},
	{BMP, "BM"},
	{WEBP, "RIFF"},
	{SVG, "<svg"},
}

// Signature returns a copy of the magic prefix used to detect f.
func Signature(f Format) []byte {
	for _, s := range signatures {
		if s.format == f {
			return []byte(s.magic)
		}
	}
	return nil
}

// match reports whether b starts with magic.
func match(b []byte, magic string) bool {
	if len(b) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if b[i] != magic[i] {
			return false
		}
	}
	return true
}

// Detect returns the format of the first signature that is a prefix of b.
func Detect(b []byte) (Format, bool) {
	for _, s := range signatures {
		if match(b, s.magic) {
			return s.format, true
		}
	}
	return 0, false
}
