package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarveshkp/rentreceipt-api/internal/domain/entity"
	"github.com/sarveshkp/rentreceipt-api/internal/domain/enum"
	"github.com/sarveshkp/rentreceipt-api/internal/domain/repository"
	"github.com/sarveshkp/rentreceipt-api/pkg/apperror"
	"github.com/sarveshkp/rentreceipt-api/pkg/email"
	"github.com/sarveshkp/rentreceipt-api/pkg/numwords"
	"github.com/sarveshkp/rentreceipt-api/pkg/pagination"
	"github.com/sarveshkp/rentreceipt-api/pkg/receipt"
)

// ReceiptService handles receipt history and document generation
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	seqRepo     repository.SequenceRepository
	mailer      *email.Service
	policy      enum.NumberingPolicy
	orientation receipt.Orientation
	now         func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	seqRepo repository.SequenceRepository,
	mailer *email.Service,
	policy enum.NumberingPolicy,
	defaultOrientation string,
) *ReceiptService {
	orientation := receipt.Portrait
	if defaultOrientation == "landscape" {
		orientation = receipt.Landscape
	}
	return &ReceiptService{
		receiptRepo: receiptRepo,
		seqRepo:     seqRepo,
		mailer:      mailer,
		policy:      policy,
		orientation: orientation,
		now:         time.Now,
	}
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	UserID            uuid.UUID
	TitleName         string
	TitleAddress      string
	TenantName        string
	DurationFrom      time.Time
	DurationTo        time.Time
	Term              enum.RentTerm
	Amount            decimal.Decimal
	PaymentMode       enum.PaymentMode
	ReferenceNo       *string
	DateOfTransaction *time.Time
	Denomination      *string
	SignaturePNG      []byte
	// ReceiptNumber, when set, overrides the configured numbering policy.
	ReceiptNumber *string
}

func (in *CreateReceiptInput) validate() error {
	var fields []apperror.FieldError
	if in.TenantName == "" {
		fields = append(fields, apperror.FieldError{Field: "tenant_name", Message: "tenant name is required"})
	}
	if in.Amount.IsNegative() {
		fields = append(fields, apperror.FieldError{Field: "amount", Message: "amount must not be negative"})
	}
	if !in.DurationFrom.IsZero() && !in.DurationTo.IsZero() && in.DurationTo.Before(in.DurationFrom) {
		fields = append(fields, apperror.FieldError{Field: "duration_to", Message: "period end must not precede period start"})
	}
	if in.PaymentMode != enum.PaymentModeCash && (in.ReferenceNo == nil || *in.ReferenceNo == "") {
		fields = append(fields, apperror.FieldError{Field: "reference_no", Message: "reference number is required for non-cash payments"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// CreateReceipt validates the input, stamps a receipt number per the
// configured policy and persists the record to the user's history.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	number, err := s.stampNumber(ctx, input)
	if err != nil {
		return nil, err
	}

	rec := &entity.Receipt{
		UserID:            input.UserID,
		ReceiptNumber:     number,
		TitleName:         input.TitleName,
		TitleAddress:      input.TitleAddress,
		TenantName:        input.TenantName,
		DurationFrom:      input.DurationFrom,
		DurationTo:        input.DurationTo,
		Term:              input.Term,
		Amount:            input.Amount,
		PaymentMode:       input.PaymentMode,
		ReferenceNo:       input.ReferenceNo,
		DateOfTransaction: input.DateOfTransaction,
		Denomination:      input.Denomination,
		SignaturePNG:      input.SignaturePNG,
	}
	if err := s.receiptRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *ReceiptService) stampNumber(ctx context.Context, input *CreateReceiptInput) (string, error) {
	if input.ReceiptNumber != nil && *input.ReceiptNumber != "" {
		return *input.ReceiptNumber, nil
	}
	if s.policy == enum.NumberingTimestamp {
		return receipt.TimestampNumber(s.now()), nil
	}
	year := s.now().Year()
	seq, err := s.seqRepo.Next(ctx, input.UserID, year)
	if err != nil {
		return "", err
	}
	return receipt.SequenceNumber(year, seq), nil
}

// GetReceipt retrieves a receipt by ID, enforcing ownership
func (s *ReceiptService) GetReceipt(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	if rec.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return rec, nil
}

// ListReceipts lists the user's receipt history
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// DeleteReceipt removes a receipt from history
func (s *ReceiptService) DeleteReceipt(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetReceipt(ctx, userID, id); err != nil {
		return err
	}
	return s.receiptRepo.Delete(ctx, id)
}

// GeneratePDF runs the document pipeline for a stored receipt and returns
// the PDF bytes along with the suggested filename.
func (s *ReceiptService) GeneratePDF(ctx context.Context, userID, id uuid.UUID, orientation string) ([]byte, string, error) {
	rec, err := s.GetReceipt(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	pdf, err := s.generate(toRecord(rec), rec.SignaturePNG, orientation)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("receipt-%s.pdf", rec.ReceiptNumber), nil
}

// Preview runs the document pipeline on an unsaved record. Nothing is
// persisted and no sequence value is consumed; records without a number get
// a timestamp one.
func (s *ReceiptService) Preview(ctx context.Context, input *CreateReceiptInput, orientation string) ([]byte, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	number := ""
	if input.ReceiptNumber != nil {
		number = *input.ReceiptNumber
	}
	if number == "" {
		number = receipt.TimestampNumber(s.now())
	}

	rec := receipt.Record{
		TitleName:     input.TitleName,
		TitleAddress:  input.TitleAddress,
		TenantName:    input.TenantName,
		DurationFrom:  input.DurationFrom,
		DurationTo:    input.DurationTo,
		Term:          input.Term.String(),
		Amount:        input.Amount,
		PaymentMode:   input.PaymentMode.String(),
		ReceiptNumber: number,
	}
	if input.ReferenceNo != nil {
		rec.ReferenceNo = *input.ReferenceNo
	}
	if input.DateOfTransaction != nil {
		rec.DateOfTransaction = *input.DateOfTransaction
	}
	if input.Denomination != nil {
		rec.Denomination = *input.Denomination
	}
	return s.generate(rec, input.SignaturePNG, orientation)
}

// ShareReceipt generates the PDF and emails it as an attachment.
func (s *ReceiptService) ShareReceipt(ctx context.Context, userID, id uuid.UUID, toEmail string) error {
	rec, err := s.GetReceipt(ctx, userID, id)
	if err != nil {
		return err
	}

	pdf, err := s.generate(toRecord(rec), rec.SignaturePNG, "")
	if err != nil {
		return err
	}

	if err := s.mailer.SendReceipt(toEmail, rec.ReceiptNumber, pdf); err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			return apperror.NewBadRequestError("Email sharing is not configured")
		}
		log.Printf("Failed to email receipt %s: %v", rec.ReceiptNumber, err)
		return apperror.NewAppError(502, "Failed to send receipt email")
	}
	return nil
}

func (s *ReceiptService) generate(rec receipt.Record, signaturePNG []byte, orientation string) ([]byte, error) {
	opts := receipt.Options{Orientation: s.orientation}
	switch orientation {
	case "landscape":
		opts.Orientation = receipt.Landscape
	case "portrait":
		opts.Orientation = receipt.Portrait
	}

	var sig *receipt.Signature
	if len(signaturePNG) > 0 {
		sig = &receipt.Signature{PNG: signaturePNG}
	}

	pdf, err := receipt.GenerateDocument(rec, sig, opts)
	if err != nil {
		if errors.Is(err, numwords.ErrOutOfRange) {
			return nil, apperror.NewUnprocessableError("Amount is beyond the supported words scale")
		}
		log.Printf("Document generation failed: %v", err)
		return nil, apperror.ErrGenerationFailed
	}
	return pdf, nil
}

// toRecord maps a stored receipt onto the pipeline value object.
func toRecord(e *entity.Receipt) receipt.Record {
	rec := receipt.Record{
		TitleName:     e.TitleName,
		TitleAddress:  e.TitleAddress,
		TenantName:    e.TenantName,
		DurationFrom:  e.DurationFrom,
		DurationTo:    e.DurationTo,
		Term:          e.Term.String(),
		Amount:        e.Amount,
		PaymentMode:   e.PaymentMode.String(),
		ReceiptNumber: e.ReceiptNumber,
	}
	if e.ReferenceNo != nil {
		rec.ReferenceNo = *e.ReferenceNo
	}
	if e.DateOfTransaction != nil {
		rec.DateOfTransaction = *e.DateOfTransaction
	}
	if e.Denomination != nil {
		rec.Denomination = *e.Denomination
	}
	return rec
}
