package receipt

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RasterScale is the fixed oversampling factor applied when rasterizing a
// layout, so the embedded image stays crisp at print resolution.
const RasterScale = 2

// Rasterize draws the layout onto an opaque white canvas at RasterScale.
// The only failure mode is an undecodable signature image.
func Rasterize(l *Layout) (*image.RGBA, error) {
	const s = RasterScale
	img := image.NewRGBA(image.Rect(0, 0, l.Width*s, l.Height*s))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13

	strokeRect(img, l.Frame.X*s, l.Frame.Y*s, l.Frame.W*s, l.Frame.H*s, s)

	// Header: centered issuer name and address, rule underneath.
	drawCentered(img, face, l.Header.Name, l.Width*s/2, l.Header.NameY*s, true)
	drawCentered(img, face, l.Header.Address, l.Width*s/2, l.Header.AddrY*s, false)
	fillRect(img, contentMargin*s, l.Header.RuleY*s, (l.Width-2*contentMargin)*s, s)

	// Identifier row: number left, label center, date right.
	drawText(img, face, l.Identifier.Number, contentMargin*s, l.Identifier.Y*s, true)
	drawCentered(img, face, l.Identifier.Label, l.Width*s/2, l.Identifier.Y*s, true)
	drawRightAligned(img, face, l.Identifier.Date, (l.Width-contentMargin)*s, l.Identifier.Y*s, false)

	drawBody(img, face, l.Body)

	if err := drawSignature(img, face, l.Signature); err != nil {
		return nil, err
	}
	return img, nil
}

// drawBody word-wraps the segment list into the body rectangle. Overflowing
// lines are clipped, matching the single-page contract.
func drawBody(img *image.RGBA, face font.Face, body BodyBlock) {
	const s = RasterScale
	type word struct {
		text string
		bold bool
	}
	var words []word
	for _, seg := range body.Text {
		for _, w := range strings.Fields(seg.Value) {
			words = append(words, word{text: w, bold: seg.Bold})
		}
	}

	left := body.Rect.X * s
	limit := (body.Rect.X + body.Rect.W) * s
	bottom := (body.Rect.Y + body.Rect.H) * s
	lineH := face.Metrics().Height.Ceil() + 6
	spaceW := font.MeasureString(face, " ").Ceil()

	x, y := left, body.Rect.Y*s+face.Metrics().Ascent.Ceil()
	for _, w := range words {
		adv := font.MeasureString(face, w.text).Ceil()
		if x > left && x+adv > limit {
			x = left
			y += lineH
			if y > bottom {
				return
			}
		}
		drawText(img, face, w.text, x, y, w.bold)
		x += adv + spaceW
	}
}

// drawSignature renders the optional image fitted into its bounding box,
// then the rule and label. Right aligned.
func drawSignature(img *image.RGBA, face font.Face, sig SignatureBlock) error {
	const s = RasterScale
	right := (sig.Box.X + sig.Box.W) * s

	if sig.Image != nil {
		src, err := png.Decode(bytes.NewReader(sig.Image))
		if err != nil {
			return fmt.Errorf("receipt: decode signature image: %w", err)
		}
		sb := src.Bounds()
		boxW, boxH := float64(sig.Box.W*s), float64(sig.Box.H*s)
		ratio := boxW / float64(sb.Dx())
		if r := boxH / float64(sb.Dy()); r < ratio {
			ratio = r
		}
		if ratio > 1 {
			ratio = 1
		}
		w := int(float64(sb.Dx()) * ratio)
		h := int(float64(sb.Dy()) * ratio)
		dst := image.Rect(right-w, sig.Box.Y*s, right, sig.Box.Y*s+h)
		xdraw.ApproxBiLinear.Scale(img, dst, src, sb, xdraw.Over, nil)
	}

	fillRect(img, sig.Box.X*s, sig.RuleY*s, sig.Box.W*s, s)
	drawRightAligned(img, face, sig.Label, right, sig.LabelY*s, false)
	return nil
}

func drawText(img *image.RGBA, face font.Face, text string, x, y int, bold bool) {
	if text == "" {
		return
	}
	d := font.Drawer{Dst: img, Src: image.Black, Face: face, Dot: fixed.P(x, y)}
	d.DrawString(text)
	if bold {
		// Faux bold: double strike with a one pixel offset.
		d.Dot = fixed.P(x+1, y)
		d.DrawString(text)
	}
}

func drawCentered(img *image.RGBA, face font.Face, text string, cx, y int, bold bool) {
	w := font.MeasureString(face, text).Ceil()
	drawText(img, face, text, cx-w/2, y, bold)
}

func drawRightAligned(img *image.RGBA, face font.Face, text string, right, y int, bold bool) {
	w := font.MeasureString(face, text).Ceil()
	drawText(img, face, text, right-w, y, bold)
}

func fillRect(img *image.RGBA, x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			img.Set(xx, yy, color.Black)
		}
	}
}

func strokeRect(img *image.RGBA, x, y, w, h, thickness int) {
	fillRect(img, x, y, w, thickness)
	fillRect(img, x, y+h-thickness, w, thickness)
	fillRect(img, x, y, thickness, h)
	fillRect(img, x+w-thickness, y, thickness, h)
}
