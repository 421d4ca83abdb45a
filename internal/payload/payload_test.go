package payload

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/fumiama/imgprobe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURI(t *testing.T) {
	data := []byte(`<svg width="1" height="2"/>`)
	img, err := imgprobe.Decode(data)
	require.NoError(t, err)

	uri := DataURI(img)
	const prefix = "data:image/svg+xml;base64,"
	require.True(t, strings.HasPrefix(uri, prefix), uri)
	dec, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestDataURIEmpty(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,", DataURI(imgprobe.Image{Format: imgprobe.PNG}))
}
