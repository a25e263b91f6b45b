package request

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarveshkp/rentreceipt-api/internal/application/service"
	"github.com/sarveshkp/rentreceipt-api/internal/domain/enum"
)

const dateLayout = "2006-01-02"

// CreateReceiptRequest represents the create/preview receipt request.
// Dates arrive as "YYYY-MM-DD" strings and the signature as base64 PNG.
type CreateReceiptRequest struct {
	TitleName         string          `json:"title_name"`
	TitleAddress      string          `json:"title_address"`
	TenantName        string          `json:"tenant_name" binding:"required"`
	DurationFrom      string          `json:"duration_from"`
	DurationTo        string          `json:"duration_to"`
	Term              string          `json:"term"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	PaymentMode       string          `json:"payment_mode"`
	ReferenceNo       *string         `json:"reference_no"`
	DateOfTransaction *string         `json:"date_of_transaction"`
	Denomination      *string         `json:"denomination"`
	SignaturePNG      string          `json:"signature_png"`
	ReceiptNumber     *string         `json:"receipt_number"`
}

// ToInput converts the request into a service input, parsing dates, enums
// and the signature image.
func (r *CreateReceiptRequest) ToInput(userID uuid.UUID) (*service.CreateReceiptInput, error) {
	input := &service.CreateReceiptInput{
		UserID:       userID,
		TitleName:    r.TitleName,
		TitleAddress: r.TitleAddress,
		TenantName:   r.TenantName,
		Amount:       r.Amount,
		ReferenceNo:  r.ReferenceNo,
		Denomination: r.Denomination,
	}

	var err error
	if input.DurationFrom, err = parseDate(r.DurationFrom, "duration_from"); err != nil {
		return nil, err
	}
	if input.DurationTo, err = parseDate(r.DurationTo, "duration_to"); err != nil {
		return nil, err
	}
	if r.DateOfTransaction != nil && *r.DateOfTransaction != "" {
		txnDate, err := parseDate(*r.DateOfTransaction, "date_of_transaction")
		if err != nil {
			return nil, err
		}
		input.DateOfTransaction = &txnDate
	}

	if r.Term != "" {
		if input.Term, err = enum.ParseRentTerm(r.Term); err != nil {
			return nil, err
		}
	}
	if r.PaymentMode != "" {
		if input.PaymentMode, err = enum.ParsePaymentMode(r.PaymentMode); err != nil {
			return nil, err
		}
	}

	if r.SignaturePNG != "" {
		png, err := base64.StdEncoding.DecodeString(r.SignaturePNG)
		if err != nil {
			return nil, fmt.Errorf("signature_png is not valid base64")
		}
		input.SignaturePNG = png
	}

	input.ReceiptNumber = r.ReceiptNumber
	return input, nil
}

func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a YYYY-MM-DD date", field)
	}
	return t, nil
}

// ShareReceiptRequest represents the share-by-email request
type ShareReceiptRequest struct {
	Email string `json:"email" binding:"required,email"`
}
