package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "9-Feb-2025", DisplayDate(date(2025, time.February, 9)))
	assert.Equal(t, "31-Dec-1999", DisplayDate(date(1999, time.December, 31)))
	assert.Equal(t, "", DisplayDate(time.Time{}))
}

func TestNumericDate(t *testing.T) {
	assert.Equal(t, "09/02/2025", NumericDate(date(2025, time.February, 9)))
	assert.Equal(t, "", NumericDate(time.Time{}))
}

func cashRecord() Record {
	return Record{
		TenantName:   "John Doe",
		DurationFrom: date(2025, time.August, 1),
		DurationTo:   date(2025, time.August, 31),
		Term:         "Monthly",
		Amount:       decimal.NewFromInt(50000),
		PaymentMode:  "Cash",
	}
}

func TestComposeCash(t *testing.T) {
	text, err := Compose(cashRecord())
	require.NoError(t, err)

	got := text.String()
	assert.Equal(t,
		"This is to acknowledge the receipt of Rs. 50000 (Fifty Thousand Only) "+
			"from John Doe towards Monthly rent for the period 1-Aug-2025 to 31-Aug-2025, paid via Cash.",
		got)
	// Cash receipts carry no transaction date clause.
	assert.NotContains(t, got, ") on ")
}

func TestComposeNonCash(t *testing.T) {
	rec := cashRecord()
	rec.PaymentMode = "UPI"
	rec.ReferenceNo = "TXN-991"
	rec.DateOfTransaction = date(2025, time.September, 1)

	text, err := Compose(rec)
	require.NoError(t, err)

	got := text.String()
	assert.Contains(t, got, "paid via UPI (TXN-991) on 1-Sep-2025.")
}

func TestComposeNonCashFallsBackToCurrentDate(t *testing.T) {
	rec := cashRecord()
	rec.PaymentMode = "Cheque"
	rec.ReferenceNo = "000123"

	now := date(2026, time.January, 15)
	text, err := composeAt(rec, now)
	require.NoError(t, err)
	assert.Contains(t, text.String(), "on 15-Jan-2026.")
}

func TestComposeFallbacks(t *testing.T) {
	text, err := Compose(Record{})
	require.NoError(t, err)

	got := text.String()
	assert.Contains(t, got, "Rs. 0 (Zero Only)")
	assert.Contains(t, got, "from Unknown towards Monthly rent")
	assert.Contains(t, got, "period N/A to N/A")
	assert.True(t, strings.HasSuffix(got, "paid via Cash."))
}

func TestComposeDenomination(t *testing.T) {
	rec := cashRecord()
	rec.Denomination = "INR"

	text, err := Compose(rec)
	require.NoError(t, err)
	assert.Contains(t, text.String(), "INR 50000 (")
}

func TestComposeIdempotent(t *testing.T) {
	rec := cashRecord()
	a, err := Compose(rec)
	require.NoError(t, err)
	b, err := Compose(rec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComposeEmphasis(t *testing.T) {
	text, err := Compose(cashRecord())
	require.NoError(t, err)

	var bold []string
	for _, seg := range text {
		if seg.Bold {
			bold = append(bold, seg.Value)
		}
	}
	assert.Contains(t, bold, "Rs. 50000")
	assert.Contains(t, bold, "Fifty Thousand Only")
	assert.Contains(t, bold, "John Doe")
	assert.Contains(t, bold, "1-Aug-2025")
	assert.Contains(t, bold, "31-Aug-2025")
}

func TestComposeAmountBeyondScale(t *testing.T) {
	rec := cashRecord()
	rec.Amount = decimal.NewFromInt(1_000_000_000)

	_, err := Compose(rec)
	assert.Error(t, err)
}

func TestComposeTruncatesAmount(t *testing.T) {
	rec := cashRecord()
	rec.Amount = decimal.RequireFromString("15000.75")

	text, err := Compose(rec)
	require.NoError(t, err)
	assert.Contains(t, text.String(), "(Fifteen Thousand Only)")
}
