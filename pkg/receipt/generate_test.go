package receipt

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocumentCash(t *testing.T) {
	rec := Record{
		TenantName:    "John Doe",
		DurationFrom:  date(2025, time.August, 1),
		DurationTo:    date(2025, time.August, 31),
		Term:          "Monthly",
		Amount:        decimal.NewFromInt(50000),
		PaymentMode:   "Cash",
		ReceiptNumber: "RCT-2025-0001",
	}

	out, err := GenerateDocument(rec, nil, Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Contains(t, string(out), "/Count 1")
}

func TestGenerateDocumentWithSignature(t *testing.T) {
	// 40x20 PNG stand-in for a captured signature.
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.Black)
	}
	var sig bytes.Buffer
	require.NoError(t, png.Encode(&sig, img))

	rec := Record{
		TitleName:     "A. Landlord",
		TitleAddress:  "12 Main Road, Pune",
		TenantName:    "Jane Roe",
		Amount:        decimal.NewFromInt(12000),
		PaymentMode:   "UPI",
		ReferenceNo:   "UPI-778",
		ReceiptNumber: "RCT-2508-1405",
	}

	out, err := GenerateDocument(rec, &Signature{PNG: sig.Bytes()}, Options{Orientation: Landscape})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateDocumentBadSignature(t *testing.T) {
	rec := Record{TenantName: "John Doe", Amount: decimal.NewFromInt(100)}

	_, err := GenerateDocument(rec, &Signature{PNG: []byte("not a png")}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document generation failed")
}

func TestGenerateDocumentAmountBeyondScale(t *testing.T) {
	rec := Record{TenantName: "John Doe", Amount: decimal.NewFromInt(2_000_000_000)}

	_, err := GenerateDocument(rec, nil, Options{})
	assert.Error(t, err)
}

func TestRasterizeDimensionsAndBackground(t *testing.T) {
	text, err := Compose(cashRecord())
	require.NoError(t, err)
	layout := BuildLayout(cashRecord(), text, nil)

	raster, err := Rasterize(layout)
	require.NoError(t, err)

	b := raster.Bounds()
	assert.Equal(t, LayoutWidth*RasterScale, b.Dx())
	assert.Equal(t, LayoutHeight*RasterScale, b.Dy())

	// Background is opaque white, even outside the frame.
	r, g, bl, a := raster.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), bl)
	assert.Equal(t, uint32(0xffff), a)
}

func TestBuildLayoutDeterministic(t *testing.T) {
	rec := cashRecord()
	text, err := Compose(rec)
	require.NoError(t, err)

	a := BuildLayout(rec, text, nil)
	b := BuildLayout(rec, text, nil)
	assert.Equal(t, a, b)

	// Signature presence is the only input that changes the tree shape.
	c := BuildLayout(rec, text, &Signature{PNG: []byte{1, 2, 3}})
	assert.NotNil(t, c.Signature.Image)
	assert.Nil(t, a.Signature.Image)
}
