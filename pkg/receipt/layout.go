package receipt

// Logical page units for the portrait layout (A4 at 72 dpi). The rasterizer
// multiplies everything by RasterScale; the exporter then fits the raster to
// the physical page, so these stay resolution-independent.
const (
	LayoutWidth  = 595
	LayoutHeight = 842

	frameInset    = 20
	contentMargin = 40

	// Signature images are capped to this bounding box.
	SignatureMaxWidth  = 200
	SignatureMaxHeight = 100
)

// Rect is an axis-aligned box in logical units.
type Rect struct {
	X, Y, W, H int
}

// Layout is the structural description of one receipt page. It holds no
// pixels; Rasterize turns it into an image. Building it is deterministic —
// the tree depends only on which inputs are present.
type Layout struct {
	Width, Height int
	Frame         Rect
	Header        HeaderBlock
	Identifier    IdentifierRow
	Body          BodyBlock
	Signature     SignatureBlock
}

// HeaderBlock is the centered issuer block with a rule underneath.
type HeaderBlock struct {
	Name    string
	Address string
	NameY   int
	AddrY   int
	RuleY   int
}

// IdentifierRow places the receipt number left, a fixed label center and the
// transaction date right.
type IdentifierRow struct {
	Number string
	Label  string
	Date   string
	Y      int
}

// BodyBlock is the wrapped paragraph of composed text.
type BodyBlock struct {
	Text Text
	Rect Rect
}

// SignatureBlock is the right-aligned trailing block: an optional image above
// a rule and the literal "Signature" label.
type SignatureBlock struct {
	Image  []byte // PNG bytes, nil when unsigned
	Box    Rect
	RuleY  int
	LabelY int
	Label  string
}

// BuildLayout lays out a record, its composed body text and an optional
// signature into a fixed-size page structure.
func BuildLayout(rec Record, text Text, sig *Signature) *Layout {
	l := &Layout{
		Width:  LayoutWidth,
		Height: LayoutHeight,
		Frame: Rect{
			X: frameInset,
			Y: frameInset,
			W: LayoutWidth - 2*frameInset,
			H: LayoutHeight - 2*frameInset,
		},
		Header: HeaderBlock{
			Name:    rec.TitleName,
			Address: rec.TitleAddress,
			NameY:   70,
			AddrY:   92,
			RuleY:   108,
		},
		Identifier: IdentifierRow{
			Number: rec.ReceiptNumber,
			Label:  "RENT RECEIPT",
			Date:   NumericDate(rec.DateOfTransaction),
			Y:      145,
		},
		Body: BodyBlock{
			Text: text,
			Rect: Rect{
				X: contentMargin,
				Y: 200,
				W: LayoutWidth - 2*contentMargin,
				H: 360,
			},
		},
		Signature: SignatureBlock{
			Box: Rect{
				X: LayoutWidth - contentMargin - SignatureMaxWidth,
				Y: 600,
				W: SignatureMaxWidth,
				H: SignatureMaxHeight,
			},
			RuleY:  712,
			LabelY: 730,
			Label:  "Signature",
		},
	}
	if sig != nil && len(sig.PNG) > 0 {
		l.Signature.Image = sig.PNG
	}
	return l
}
