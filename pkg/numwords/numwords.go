package numwords

import (
	"errors"
	"strings"
)

// Indian numbering system: after the first three-digit group, values are
// grouped in pairs of digits as Thousand (1e3), Lakh (1e5) and Crore (1e7).

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// ErrOutOfRange is returned for negative values and for values that would
// need a scale beyond Crore (>= 100 crore).
var ErrOutOfRange = errors.New("numwords: value outside supported range")

const maxSupported = 1_000_000_000 // 100 crore

// Words converts n into Indian-numbering words ("Fifteen Lakh", "One Crore").
// Zero yields "Zero".
func Words(n int64) (string, error) {
	if n < 0 || n >= maxSupported {
		return "", ErrOutOfRange
	}
	if n == 0 {
		return "Zero", nil
	}

	groups := []struct {
		value int64
		label string
	}{
		{n / 10_000_000, "Crore"},
		{(n / 100_000) % 100, "Lakh"},
		{(n / 1_000) % 100, "Thousand"},
		{n % 1_000, ""},
	}

	var parts []string
	for _, g := range groups {
		if g.value == 0 {
			continue
		}
		w := belowThousand(int(g.value))
		if g.label != "" {
			w += " " + g.label
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, " "), nil
}

// belowThousand converts 1..999 without recursion.
func belowThousand(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}
