package imgprobe

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// decodesvg reads the size from the attributes of the root svg element.
// A viewBox wins over width and height; of the viewBox list only the first
// two numbers are used.
func decodesvg(b []byte) (Size, error) {
	if !utf8.Valid(b) {
		return Size{}, errSVGText
	}
	z := html.NewTokenizer(bytes.NewReader(b))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return Size{}, errSVGSize
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "svg" {
				continue
			}
			attrs := make(map[string]string)
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				k := strings.ToLower(string(key))
				if _, ok := attrs[k]; !ok {
					attrs[k] = string(val)
				}
			}
			if sz, ok := svgViewBox(attrs["viewbox"]); ok {
				return sz, nil
			}
			if sz, ok := svgWidthHeight(attrs["width"], attrs["height"]); ok {
				return sz, nil
			}
			return Size{}, errSVGSize
		}
	}
}

func svgViewBox(v string) (Size, bool) {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) < 2 {
		return Size{}, false
	}
	w, ok := svgNumber(fields[0])
	if !ok {
		return Size{}, false
	}
	h, ok := svgNumber(fields[1])
	if !ok {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

func svgWidthHeight(width, height string) (Size, bool) {
	w, ok := svgLength(width)
	if !ok {
		return Size{}, false
	}
	h, ok := svgLength(height)
	if !ok {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

// svgLength parses a length such as "120", "1.2e2" or "120px". Percentages
// are relative to the viewport and are rejected.
func svgLength(s string) (uint32, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	if i == digits {
		return 0, false
	}
	// An exponent needs at least one digit, so the "e" of units such as
	// "em" and "ex" is left alone.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	for _, c := range s[i:] {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return 0, false
		}
	}
	return svgNumber(s[:i])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func svgNumber(s string) (uint32, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > math.MaxUint32 {
		return 0, false
	}
	return uint32(f), true
}
