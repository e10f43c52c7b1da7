package media

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestNormalizeKeepsSmallImage(t *testing.T) {
	out, err := Normalize(bytes.NewReader(pngBytes(t, 100, 80)))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestNormalizeExtremeAspectRatio(t *testing.T) {
	// 2048x1: o redimensionamento proporcional zeraria a altura.
	out, err := Normalize(bytes.NewReader(pngBytes(t, 2048, 1)))
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	out, err = Normalize(bytes.NewReader(pngBytes(t, 1, 2048)))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}
