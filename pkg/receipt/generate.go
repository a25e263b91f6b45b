// Package receipt implements the rent receipt document pipeline: body text
// composition, receipt numbering, page layout, rasterization and PDF export.
package receipt

import (
	"fmt"
	"time"
)

// Options configures the exported page.
type Options struct {
	Format      PageFormat
	Orientation Orientation
}

// GenerateDocument runs the full pipeline for one record: compose the body
// text, build the layout, rasterize it and export a single-page PDF. The
// signature is optional. Degenerate input degrades via the compose fallbacks;
// only rasterization/export problems (and an amount beyond the words scale)
// surface as errors.
func GenerateDocument(rec Record, sig *Signature, opts Options) ([]byte, error) {
	return generateAt(rec, sig, opts, time.Now())
}

func generateAt(rec Record, sig *Signature, opts Options, now time.Time) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = PageA4
	}
	if opts.Orientation == "" {
		opts.Orientation = Portrait
	}
	if rec.DateOfTransaction.IsZero() {
		rec.DateOfTransaction = now
	}

	text, err := composeAt(rec, now)
	if err != nil {
		return nil, err
	}

	layout := BuildLayout(rec, text, sig)
	raster, err := Rasterize(layout)
	if err != nil {
		return nil, fmt.Errorf("receipt: document generation failed: %w", err)
	}
	out, err := Export(raster, opts.Format, opts.Orientation)
	if err != nil {
		return nil, fmt.Errorf("receipt: document generation failed: %w", err)
	}
	return out, nil
}
