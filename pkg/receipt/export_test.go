package receipt

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitRatio(t *testing.T) {
	cases := []struct {
		rasterW, rasterH float64
		pageW, pageH     float64
	}{
		{1190, 1684, 595.28, 841.89}, // portrait raster on portrait A4
		{1190, 1684, 841.89, 595.28}, // portrait raster on landscape A4
		{100, 5000, 595.28, 841.89},  // extreme aspect
		{5000, 100, 595.28, 841.89},
		{10, 10, 595.28, 841.89}, // smaller than the page still scales up
	}
	for _, tc := range cases {
		ratio := FitRatio(tc.rasterW, tc.rasterH, tc.pageW, tc.pageH)
		assert.LessOrEqual(t, tc.rasterW*ratio, tc.pageW+1e-9)
		assert.LessOrEqual(t, tc.rasterH*ratio, tc.pageH+1e-9)
		// The binding dimension fills the page exactly.
		assert.True(t,
			tc.rasterW*ratio > tc.pageW-1e-6 || tc.rasterH*ratio > tc.pageH-1e-6,
			"ratio should be tight on one axis")
	}
}

func testRaster(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func TestExportProducesSinglePagePDF(t *testing.T) {
	out, err := Export(testRaster(200, 300), PageA4, Portrait)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Contains(t, string(out), "/Count 1")
}

func TestExportLandscape(t *testing.T) {
	out, err := Export(testRaster(300, 200), PageA4, Landscape)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
