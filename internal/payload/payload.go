// Package payload turns decoded images into strings that can be embedded
// inline in documents.
package payload

import (
	"encoding/base64"
	"strings"

	"github.com/fumiama/imgprobe"
)

// DataURI returns img as an RFC 2397 data URI with a base64 payload.
func DataURI(img imgprobe.Image) string {
	mime := img.Format.MIMEType()
	var sb strings.Builder
	sb.Grow(len("data:;base64,") + len(mime) + base64.StdEncoding.EncodedLen(len(img.Data)))
	sb.WriteString("data:")
	sb.WriteString(mime)
	sb.WriteString(";base64,")
	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	enc.Write(img.Data)
	enc.Close()
	return sb.String()
}
