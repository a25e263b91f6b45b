package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarveshkp/rentreceipt-api/internal/domain/entity"
	"github.com/sarveshkp/rentreceipt-api/internal/domain/enum"
	"github.com/sarveshkp/rentreceipt-api/pkg/apperror"
	"github.com/sarveshkp/rentreceipt-api/pkg/pagination"
)

type fakeReceiptRepo struct {
	created  []*entity.Receipt
	byID     map[uuid.UUID]*entity.Receipt
	deleted  []uuid.UUID
	listResp []entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{byID: make(map[uuid.UUID]*entity.Receipt)}
}

func (f *fakeReceiptRepo) Create(ctx context.Context, rec *entity.Receipt) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.created = append(f.created, rec)
	f.byID[rec.ID] = rec
	return nil
}

func (f *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return f.byID[id], nil
}

func (f *fakeReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeReceiptRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Receipt, int64, error) {
	return f.listResp, int64(len(f.listResp)), nil
}

type fakeSequenceRepo struct {
	next  int
	calls int
}

func (f *fakeSequenceRepo) Next(ctx context.Context, userID uuid.UUID, year int) (int, error) {
	f.calls++
	f.next++
	return f.next, nil
}

func newTestService(policy enum.NumberingPolicy) (*ReceiptService, *fakeReceiptRepo, *fakeSequenceRepo) {
	repo := newFakeReceiptRepo()
	seq := &fakeSequenceRepo{}
	svc := NewReceiptService(repo, seq, nil, policy, "portrait")
	svc.now = func() time.Time {
		return time.Date(2025, time.August, 14, 14, 5, 0, 0, time.UTC)
	}
	return svc, repo, seq
}

func validInput(userID uuid.UUID) *CreateReceiptInput {
	return &CreateReceiptInput{
		UserID:       userID,
		TenantName:   "John Doe",
		DurationFrom: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
		DurationTo:   time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(50000),
	}
}

func TestCreateReceiptSequenceNumbering(t *testing.T) {
	svc, repo, seq := newTestService(enum.NumberingSequence)
	userID := uuid.New()

	rec, err := svc.CreateReceipt(context.Background(), validInput(userID))
	require.NoError(t, err)
	assert.Equal(t, "RCT-2025-0001", rec.ReceiptNumber)
	assert.Equal(t, 1, seq.calls)
	require.Len(t, repo.created, 1)

	rec2, err := svc.CreateReceipt(context.Background(), validInput(userID))
	require.NoError(t, err)
	assert.Equal(t, "RCT-2025-0002", rec2.ReceiptNumber)
}

func TestCreateReceiptTimestampNumbering(t *testing.T) {
	svc, _, seq := newTestService(enum.NumberingTimestamp)

	rec, err := svc.CreateReceipt(context.Background(), validInput(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, "RCT-2508-1405", rec.ReceiptNumber)
	assert.Zero(t, seq.calls, "timestamp policy must not touch the counter")
}

func TestCreateReceiptExplicitNumberWins(t *testing.T) {
	svc, _, seq := newTestService(enum.NumberingSequence)

	input := validInput(uuid.New())
	number := "RCT-CUSTOM-7"
	input.ReceiptNumber = &number

	rec, err := svc.CreateReceipt(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "RCT-CUSTOM-7", rec.ReceiptNumber)
	assert.Zero(t, seq.calls)
}

func TestCreateReceiptValidation(t *testing.T) {
	svc, _, _ := newTestService(enum.NumberingSequence)

	t.Run("missing tenant name", func(t *testing.T) {
		input := validInput(uuid.New())
		input.TenantName = ""
		_, err := svc.CreateReceipt(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
	})

	t.Run("inverted period", func(t *testing.T) {
		input := validInput(uuid.New())
		input.DurationFrom, input.DurationTo = input.DurationTo, input.DurationFrom
		_, err := svc.CreateReceipt(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
	})

	t.Run("non-cash without reference", func(t *testing.T) {
		input := validInput(uuid.New())
		input.PaymentMode = enum.PaymentModeUPI
		_, err := svc.CreateReceipt(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
	})
}

func TestGetReceiptOwnership(t *testing.T) {
	svc, repo, _ := newTestService(enum.NumberingSequence)
	owner := uuid.New()

	rec, err := svc.CreateReceipt(context.Background(), validInput(owner))
	require.NoError(t, err)

	got, err := svc.GetReceipt(context.Background(), owner, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	_, err = svc.GetReceipt(context.Background(), uuid.New(), rec.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	_, err = svc.GetReceipt(context.Background(), owner, uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	require.NoError(t, svc.DeleteReceipt(context.Background(), owner, rec.ID))
	assert.Contains(t, repo.deleted, rec.ID)
}

func TestGeneratePDFFromStoredReceipt(t *testing.T) {
	svc, _, _ := newTestService(enum.NumberingSequence)
	owner := uuid.New()

	rec, err := svc.CreateReceipt(context.Background(), validInput(owner))
	require.NoError(t, err)

	pdf, filename, err := svc.GeneratePDF(context.Background(), owner, rec.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "receipt-RCT-2025-0001.pdf", filename)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")
}

func TestPreviewDoesNotPersist(t *testing.T) {
	svc, repo, seq := newTestService(enum.NumberingSequence)

	pdf, err := svc.Preview(context.Background(), validInput(uuid.New()), "landscape")
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Empty(t, repo.created)
	assert.Zero(t, seq.calls, "preview must not consume sequence values")
}
