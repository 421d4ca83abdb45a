package imgprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allFormats = []Format{JPEG, PNG, GIF, BMP, WEBP, SVG}

func TestDetect(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			sig := Signature(f)
			require.NotEmpty(t, sig)

			got, ok := Detect(sig)
			require.True(t, ok)
			assert.Equal(t, f, got)

			padded := append(append([]byte{}, sig...), make([]byte, 64)...)
			got, ok = Detect(padded)
			require.True(t, ok)
			assert.Equal(t, f, got)

			_, ok = Detect(sig[:len(sig)-1])
			assert.False(t, ok, "prefix of signature must not match")
		})
	}
}

func TestDetectSingleByteChange(t *testing.T) {
	for _, f := range allFormats {
		sig := Signature(f)
		for i := range sig {
			b := append(append([]byte{}, sig...), make([]byte, 64)...)
			b[i] ^= 0xff
			got, ok := Detect(b)
			assert.False(t, ok, "%v: byte %d changed, detected as %v", f, i, got)
		}
	}
}

func TestDetectOrder(t *testing.T) {
	var got []Format
	for _, s := range signatures {
		got = append(got, s.format)
	}
	assert.Equal(t, allFormats, got)

	for i, a := range signatures {
		for j, b := range signatures {
			if i != j {
				assert.False(t, match([]byte(a.magic), b.magic), "%v signature starts with %v signature", a.format, b.format)
			}
		}
	}
}

func TestDetectEmpty(t *testing.T) {
	_, ok := Detect(nil)
	assert.False(t, ok)
	_, ok = Detect([]byte{})
	assert.False(t, ok)
}

func TestFormatNames(t *testing.T) {
	names := []string{"jpeg", "png", "gif", "bmp", "webp", "svg"}
	for i, f := range allFormats {
		assert.Equal(t, names[i], f.String())
		assert.NotEqual(t, "application/octet-stream", f.MIMEType())
	}
	assert.Equal(t, "image/svg+xml", SVG.MIMEType())
	assert.Equal(t, "unknown", Format(42).String())
	assert.Equal(t, "application/octet-stream", Format(42).MIMEType())
	assert.Nil(t, Signature(Format(42)))
}
