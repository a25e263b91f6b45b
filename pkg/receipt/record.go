package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is the value object the document pipeline consumes. It carries no
// persistence concerns; the service layer maps stored receipts into it.
// Field validation is the caller's job — the pipeline resolves missing values
// to documented fallbacks instead of rejecting the record.
type Record struct {
	TitleName    string // issuer (landlord) name, may be empty
	TitleAddress string
	TenantName   string
	DurationFrom time.Time
	DurationTo   time.Time
	Term         string // "Monthly" or "Yearly"
	Amount       decimal.Decimal
	PaymentMode  string // "Cash", "Cheque", "Bank Deposit", "UPI", "Net Banking"
	ReferenceNo  string
	// DateOfTransaction is only rendered for non-cash payment modes.
	DateOfTransaction time.Time
	ReceiptNumber     string
	// Denomination, when set, replaces the default "Rs." prefix with a
	// currency code (legacy variant behavior).
	Denomination string
}

// Signature holds a tenant/landlord signature supplied per render call.
// The pipeline does not retain it.
type Signature struct {
	PNG []byte
}

// AmountDisplay formats the amount with either the default rupee prefix or
// the record's denomination code.
func (r Record) AmountDisplay() string {
	if r.Denomination != "" {
		return r.Denomination + " " + r.Amount.String()
	}
	return "Rs. " + r.Amount.String()
}
