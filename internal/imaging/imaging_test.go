package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestResize(t *testing.T) {
	img := Resize(solid(100, 50, color.White), 20, 20)
	assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
}

func TestRoundedCard(t *testing.T) {
	data, err := RoundedCard(solid(64, 64, color.White), 128, 24)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 128), decoded.Bounds())

	// corner pixel lies outside the rounded clip, center inside
	_, _, _, cornerAlpha := decoded.At(0, 0).RGBA()
	_, _, _, centerAlpha := decoded.At(64, 64).RGBA()
	assert.Zero(t, cornerAlpha)
	assert.NotZero(t, centerAlpha)
}
