package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sarveshkp/rentreceipt-api/internal/domain/entity"
	"github.com/sarveshkp/rentreceipt-api/pkg/pagination"
)

// ReceiptRepository defines the interface for receipt history operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the user's receipts, newest first, filtered by an optional
	// tenant-name/receipt-number search.
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Receipt, int64, error)
}

// SequenceRepository hands out the next value of the per-user, per-year
// receipt counter. Implementations must increment atomically.
type SequenceRepository interface {
	Next(ctx context.Context, userID uuid.UUID, year int) (int, error)
}
