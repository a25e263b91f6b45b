package receipt

import (
	"strings"
	"time"

	"github.com/sarveshkp/rentreceipt-api/pkg/numwords"
)

// Segment is a run of body text with an emphasis flag. The renderer decides
// how emphasis is drawn; composition stays markup-free.
type Segment struct {
	Value string
	Bold  bool
}

// Text is the composed receipt body as an ordered segment list.
type Text []Segment

// String flattens the segments into plain text.
func (t Text) String() string {
	var b strings.Builder
	for _, s := range t {
		b.WriteString(s.Value)
	}
	return b.String()
}

// Compose builds the receipt body text from a record. Missing fields resolve
// to fallbacks (amount 0, tenant "Unknown", Monthly term, Cash mode, "N/A"
// period dates) so a partially filled record still yields readable output.
// The only error is an amount whose integer part exceeds the supported
// words scale.
func Compose(rec Record) (Text, error) {
	return composeAt(rec, time.Now())
}

func composeAt(rec Record, now time.Time) (Text, error) {
	tenant := rec.TenantName
	if tenant == "" {
		tenant = "Unknown"
	}
	term := rec.Term
	if term == "" {
		term = "Monthly"
	}
	mode := rec.PaymentMode
	if mode == "" {
		mode = "Cash"
	}

	words, err := numwords.Words(rec.Amount.IntPart())
	if err != nil {
		return nil, err
	}

	from := DisplayDate(rec.DurationFrom)
	if from == "" {
		from = "N/A"
	}
	to := DisplayDate(rec.DurationTo)
	if to == "" {
		to = "N/A"
	}

	text := Text{
		{Value: "This is to acknowledge the receipt of "},
		{Value: rec.AmountDisplay(), Bold: true},
		{Value: " ("},
		{Value: words + " Only", Bold: true},
		{Value: ") from "},
		{Value: tenant, Bold: true},
		{Value: " towards " + term + " rent for the period "},
		{Value: from, Bold: true},
		{Value: " to "},
		{Value: to, Bold: true},
	}

	if mode == "Cash" {
		return append(text, Segment{Value: ", paid via Cash."}), nil
	}

	txn := rec.DateOfTransaction
	if txn.IsZero() {
		txn = now
	}
	return append(text,
		Segment{Value: ", paid via " + mode + " (" + rec.ReferenceNo + ") on "},
		Segment{Value: DisplayDate(txn), Bold: true},
		Segment{Value: "."},
	), nil
}
