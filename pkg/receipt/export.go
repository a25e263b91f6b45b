package receipt

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// PageFormat names a physical page size understood by the PDF backend.
type PageFormat string

// Orientation selects portrait or landscape pages.
type Orientation string

const (
	PageA4 PageFormat = "A4"

	Portrait  Orientation = "P"
	Landscape Orientation = "L"
)

// FitRatio is the uniform scale that fits a raster entirely within the page
// without cropping or distortion.
func FitRatio(rasterW, rasterH, pageW, pageH float64) float64 {
	ratio := pageW / rasterW
	if r := pageH / rasterH; r < ratio {
		ratio = r
	}
	return ratio
}

// Export embeds the raster as the sole content of a single page of the given
// format and orientation. The image is centered horizontally and anchored to
// the top of the page; there is no pagination — overflow is clipped.
func Export(raster image.Image, format PageFormat, orientation Orientation) ([]byte, error) {
	pdf := fpdf.New(string(orientation), "pt", string(format), "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, raster); err != nil {
		return nil, fmt.Errorf("receipt: encode raster: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("receipt", opts, &buf)

	pageW, pageH := pdf.GetPageSize()
	b := raster.Bounds()
	rw, rh := float64(b.Dx()), float64(b.Dy())
	ratio := FitRatio(rw, rh, pageW, pageH)

	x := (pageW - rw*ratio) / 2
	pdf.ImageOptions("receipt", x, 0, rw*ratio, rh*ratio, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("receipt: write pdf: %w", err)
	}
	return out.Bytes(), nil
}
