package imgprobe

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBMP(t *testing.T) {
	for _, sz := range []Size{{1, 1}, {640, 480}, {3, 70000}} {
		b := encodeBMP(t, int(sz.Width), int(sz.Height))
		img, err := Decode(b)
		require.NoError(t, err)
		assert.Equal(t, BMP, img.Format)
		assert.Equal(t, sz, img.Size)
	}
}

func TestDecodeBMPTopDown(t *testing.T) {
	b := make([]byte, 26)
	copy(b, "BM")
	binary.LittleEndian.PutUint32(b[14:18], 40)
	binary.LittleEndian.PutUint32(b[18:22], 16)
	binary.LittleEndian.PutUint32(b[22:26], uint32(0xfffffff0)) // -16

	img, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, Size{16, 0xfffffff0}, img.Size)
}

func TestDecodeGIF(t *testing.T) {
	for _, v := range []string{"GIF87a", "GIF89a"} {
		b := append([]byte(v), 0x34, 0x12, 0xff, 0xff)
		img, err := Decode(b)
		require.NoError(t, err, v)
		assert.Equal(t, Size{0x1234, 0xffff}, img.Size, v)
	}
}
