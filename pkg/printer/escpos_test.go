package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte{escByte, '@'}))
}

func TestWrappedLines(t *testing.T) {
	doc := NewDocument(10)
	doc.WrappedLines("one two three four")

	out := string(doc.Bytes())
	assert.Contains(t, out, "one two\n")
	assert.Contains(t, out, "three four\n")
}

func TestPairPadsToWidth(t *testing.T) {
	doc := NewDocument(20)
	doc.Pair("No.", "RCT-2025-0001")

	line := "No." + strings.Repeat(" ", 20-3-13) + "RCT-2025-0001\n"
	assert.Contains(t, string(doc.Bytes()), line)
}

func TestSeparatorAndCut(t *testing.T) {
	doc := NewDocument(16)
	doc.Separator().Cut()

	out := doc.Bytes()
	assert.Contains(t, string(out), strings.Repeat("-", 16)+"\n")
	assert.True(t, bytes.HasSuffix(out, []byte{gsByte, 'V', 1}))
}

func TestZeroWidthFallsBack(t *testing.T) {
	doc := NewDocument(0)
	assert.Equal(t, 32, doc.width)
}

func TestNullPrinter(t *testing.T) {
	p := NewNullPrinter()
	assert.NoError(t, p.Print([]byte("anything")))
	assert.False(t, p.IsConnected())
}
