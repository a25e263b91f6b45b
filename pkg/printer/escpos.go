package printer

import (
	"bytes"
	"strings"
)

// ESC/POS command constants
const (
	escByte = 0x1B
	gsByte  = 0x1D
	lfByte  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm, 48 for 80mm)
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	// Initialize printer
	d.buf.Write([]byte{escByte, '@'})
	return d
}

// Align sets the text alignment for subsequent lines.
func (d *Document) Align(alignment int) *Document {
	d.buf.Write([]byte{escByte, 'a', byte(alignment)})
	return d
}

// Bold toggles emphasized printing.
func (d *Document) Bold(on bool) *Document {
	var v byte
	if on {
		v = 1
	}
	d.buf.Write([]byte{escByte, 'E', v})
	return d
}

// Line prints one line of text followed by a line feed.
func (d *Document) Line(text string) *Document {
	d.buf.WriteString(text)
	d.buf.WriteByte(lfByte)
	return d
}

// WrappedLines word-wraps text to the print width and prints each line.
func (d *Document) WrappedLines(text string) *Document {
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= d.width:
			line += " " + word
		default:
			d.Line(line)
			line = word
		}
	}
	if line != "" {
		d.Line(line)
	}
	return d
}

// Pair prints a left label and right value padded to the print width.
func (d *Document) Pair(label, value string) *Document {
	pad := d.width - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	return d.Line(label + strings.Repeat(" ", pad) + value)
}

// Separator prints a full-width dashed rule.
func (d *Document) Separator() *Document {
	return d.Line(strings.Repeat("-", d.width))
}

// Feed advances the paper by n lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lfByte)
	}
	return d
}

// Cut issues a partial paper cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gsByte, 'V', 1})
	return d
}

// Bytes returns the assembled ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
