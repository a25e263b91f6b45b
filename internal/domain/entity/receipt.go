package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sarveshkp/rentreceipt-api/internal/domain/enum"
)

// Receipt is one generated rent receipt kept in the user's history. The PDF
// itself is never stored — it is regenerated from this record on demand.
type Receipt struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ReceiptNumber string    `gorm:"size:50;not null;index" json:"receipt_number"`

	TitleName    string `gorm:"size:255" json:"title_name"`
	TitleAddress string `gorm:"type:text" json:"title_address"`
	TenantName   string `gorm:"size:255;not null" json:"tenant_name"`

	DurationFrom time.Time        `json:"duration_from"`
	DurationTo   time.Time        `json:"duration_to"`
	Term         enum.RentTerm    `gorm:"not null;default:0" json:"term"`
	Amount       decimal.Decimal  `gorm:"type:numeric(14,2)" json:"amount"`
	PaymentMode  enum.PaymentMode `gorm:"not null;default:0" json:"payment_mode"`
	ReferenceNo  *string          `gorm:"size:100" json:"reference_no,omitempty"`
	// DateOfTransaction is required by convention for non-cash modes.
	DateOfTransaction *time.Time `json:"date_of_transaction,omitempty"`
	// Denomination switches the rendered amount prefix to a currency code.
	Denomination *string `gorm:"size:10" json:"denomination,omitempty"`

	// SignaturePNG holds the captured signature image, if any.
	SignaturePNG []byte `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptSequence backs the sequence numbering policy: one monotonic counter
// per user and calendar year. NextSeq is the value the next receipt gets.
type ReceiptSequence struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Year      int       `gorm:"primaryKey" json:"year"`
	NextSeq   int       `gorm:"not null;default:1" json:"next_seq"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the ReceiptSequence model
func (ReceiptSequence) TableName() string {
	return "receipt_sequences"
}
