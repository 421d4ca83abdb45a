package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fumiama/imgprobe"
	"github.com/fumiama/imgprobe/internal/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func infoResults() []probe.Result {
	return []probe.Result{
		{Path: "a.gif", Bytes: 10, Image: imgprobe.Image{Format: imgprobe.GIF, Size: imgprobe.Size{Width: 1, Height: 2}}},
		{Path: "long-name.bin", Bytes: 3, Err: imgprobe.ErrUnsupportedFormat},
	}
}

func TestWriteInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeInfo(&buf, infoResults()))
	assert.Equal(t,
		"a.gif          gif   1x2\n"+
			"long-name.bin  error: imgprobe: unsupported format\n",
		buf.String())
}

func TestWriteJSONLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONLines(&buf, infoResults()))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "a.gif", first["path"])
	assert.Equal(t, "gif", first["format"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "imgprobe: unsupported format", second["error"])
}
