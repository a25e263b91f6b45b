package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sarveshkp/rentreceipt-api/pkg/apperror"
	"github.com/sarveshkp/rentreceipt-api/pkg/receipt"

	"github.com/sarveshkp/rentreceipt-api/pkg/printer"
)

// PrintService renders stored receipts as ESC/POS tickets on a thermal
// printer. Printing is best-effort plumbing around the same composed text
// the PDF pipeline uses.
type PrintService struct {
	printer  printer.Printer
	receipts *ReceiptService
	width    int
}

// NewPrintService creates a new print service
func NewPrintService(p printer.Printer, receipts *ReceiptService, charWidth int) *PrintService {
	return &PrintService{printer: p, receipts: receipts, width: charWidth}
}

// PrintReceipt fetches the receipt, lays out a ticket and sends it to the
// configured printer.
func (s *PrintService) PrintReceipt(ctx context.Context, userID, id uuid.UUID) error {
	rec, err := s.receipts.GetReceipt(ctx, userID, id)
	if err != nil {
		return err
	}
	if !s.printer.IsConnected() {
		return apperror.NewBadRequestError("Printer is not available")
	}

	record := toRecord(rec)
	text, err := receipt.Compose(record)
	if err != nil {
		return apperror.NewUnprocessableError("Amount is beyond the supported words scale")
	}

	doc := printer.NewDocument(s.width)
	doc.Align(printer.AlignCenter).Bold(true)
	if record.TitleName != "" {
		doc.Line(record.TitleName)
	}
	doc.Bold(false)
	if record.TitleAddress != "" {
		doc.WrappedLines(record.TitleAddress)
	}
	doc.Line("RENT RECEIPT").
		Align(printer.AlignLeft).
		Separator().
		Pair("No.", record.ReceiptNumber).
		Pair("Date", receipt.NumericDate(record.DateOfTransaction)).
		Separator().
		WrappedLines(text.String()).
		Separator().
		Pair("Amount", record.AmountDisplay()).
		Feed(2).
		Align(printer.AlignRight).
		Line("Signature").
		Feed(3).
		Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return apperror.NewAppError(502, "Failed to print receipt")
	}
	return nil
}
