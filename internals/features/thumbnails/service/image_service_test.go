package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToThumbnailWebP_Downscales(t *testing.T) {
	out, err := ToThumbnailWebP(pngBytes(t, 2560, 1000), "cover.png")
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, MaxWidth)
	assert.LessOrEqual(t, cfg.Height, MaxHeight)
	assert.Equal(t, MaxWidth, cfg.Width)
}

func TestToThumbnailWebP_KeepsSmallImages(t *testing.T) {
	out, err := ToThumbnailWebP(pngBytes(t, 64, 48), "small.png")
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
}

func TestToThumbnailWebP_RejectsGarbage(t *testing.T) {
	_, err := ToThumbnailWebP(nil, "x.png")
	assert.Error(t, err)

	_, err = ToThumbnailWebP([]byte("definitely not an image"), "notes.txt")
	assert.Error(t, err)

	_, err = ToThumbnailWebP([]byte("broken"), "broken.png")
	assert.Error(t, err)
}
