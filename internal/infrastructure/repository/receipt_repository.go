package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarveshkp/rentreceipt-api/internal/domain/entity"
	domainRepo "github.com/sarveshkp/rentreceipt-api/internal/domain/repository"
	"github.com/sarveshkp/rentreceipt-api/pkg/pagination"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Receipt{}, "id = ?", id).Error
}

func (r *receiptRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).Where("user_id = ?", userID)

	if search != "" {
		// LOWER/LIKE instead of ILIKE so the same query works on sqlite.
		pattern := "%" + search + "%"
		query = query.Where("LOWER(tenant_name) LIKE LOWER(?) OR LOWER(receipt_number) LIKE LOWER(?)",
			pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&receipts).Error

	return receipts, total, err
}

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new receipt sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next returns the next counter value for (user, year) and advances it.
// The increment is a single UPDATE with an expression so concurrent stamps
// cannot hand out the same value.
func (r *sequenceRepository) Next(ctx context.Context, userID uuid.UUID, year int) (int, error) {
	var seq int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.ReceiptSequence{}).
			Where("user_id = ? AND year = ?", userID, year).
			Update("next_seq", gorm.Expr("next_seq + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			row := entity.ReceiptSequence{UserID: userID, Year: year, NextSeq: 2}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			seq = 1
			return nil
		}

		var row entity.ReceiptSequence
		if err := tx.Where("user_id = ? AND year = ?", userID, year).First(&row).Error; err != nil {
			return err
		}
		seq = row.NextSeq - 1
		return nil
	})
	return seq, err
}
