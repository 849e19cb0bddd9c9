package service

import (
	"context"
	"testing"
	"time"

	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/internal/core/ports/mocks"
	"family-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerService
	walletRepo *mocks.MockWalletRepository
	txRepo     *mocks.MockTransactionRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(d.walletRepo, d.txRepo, d.transactor, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func activeWallet(childID uuid.UUID, balance int64) *domain.Wallet {
	return &domain.Wallet{
		ID:            uuid.New(),
		ChildID:       childID,
		Currency:      domain.DefaultCurrency,
		Balance:       balance,
		TotalCredited: balance,
		Active:        true,
	}
}

// ==================== Credit Tests ====================

func TestLedgerService_Credit_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	wallet := activeWallet(childID, 100_00)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByChildIDForUpdate(ctx, tx, childID).Return(wallet, nil)
	d.txRepo.EXPECT().GetByReference(ctx, tx, wallet.ID, "session-1").Return(nil, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet.ID, int64(600_00), int64(600_00), int64(0)).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.Credit(ctx, ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      500_00,
		Source:      domain.TransactionSourceTopup,
		ReferenceID: "session-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionKindCredit, txn.Kind)
	assert.Equal(t, int64(500_00), txn.Amount)
}

func TestLedgerService_Credit_ReplayReturnsOriginal(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	wallet := activeWallet(childID, 600_00)
	tx := &mockTx{}

	original := &domain.Transaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		Kind:        domain.TransactionKindCredit,
		Amount:      500_00,
		ReferenceID: "session-1",
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByChildIDForUpdate(ctx, tx, childID).Return(wallet, nil)
	d.txRepo.EXPECT().GetByReference(ctx, tx, wallet.ID, "session-1").Return(original, nil)
	// No UpdateBalances, no Create: the replay must not mutate anything.

	txn, err := d.svc.Credit(ctx, ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      500_00,
		Source:      domain.TransactionSourceTopup,
		ReferenceID: "session-1",
	})
	require.NoError(t, err)
	assert.Equal(t, original.ID, txn.ID)
}

func TestLedgerService_Credit_ProvisionsWallet(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByChildIDForUpdate(ctx, tx, childID).Return(nil, nil)
	d.walletRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.txRepo.EXPECT().GetByReference(ctx, tx, gomock.Any(), "session-2").Return(nil, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, gomock.Any(), int64(200_00), int64(200_00), int64(0)).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.Credit(ctx, ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      200_00,
		Source:      domain.TransactionSourceTopup,
		ReferenceID: "session-2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(200_00), txn.Amount)
}

func TestLedgerService_Credit_InvalidAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Credit(context.Background(), ports.LedgerEntryRequest{
		ChildID:     uuid.New(),
		Amount:      0,
		ReferenceID: "r",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidAmount, appErr.Code)
}

// ==================== Debit Tests ====================

func TestLedgerService_Debit_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	wallet := activeWallet(childID, 500_00)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByChildIDForUpdate(ctx, tx, childID).Return(wallet, nil)
	d.txRepo.EXPECT().GetByReference(ctx, tx, wallet.ID, "req-1").Return(nil, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet.ID, int64(300_00), int64(500_00), int64(200_00)).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.Debit(ctx, ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      200_00,
		Source:      domain.TransactionSourcePurchase,
		ReferenceID: "req-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionKindDebit, txn.Kind)
}

func TestLedgerService_Debit_InsufficientFunds(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	wallet := activeWallet(childID, 100_00)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByChildIDForUpdate(ctx, tx, childID).Return(wallet, nil)
	d.txRepo.EXPECT().GetByReference(ctx, tx, wallet.ID, "req-2").Return(nil, nil)
	// Balance check fails before any write.

	_, err := d.svc.Debit(ctx, ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      200_00,
		Source:      domain.TransactionSourcePurchase,
		ReferenceID: "req-2",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientFunds, appErr.Code)
}

func TestLedgerService_Debit_InactiveWallet(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	wallet := activeWallet(childID, 500_00)
	wallet.Active = false
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByChildIDForUpdate(ctx, tx, childID).Return(wallet, nil)

	_, err := d.svc.Debit(ctx, ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      100_00,
		Source:      domain.TransactionSourcePurchase,
		ReferenceID: "req-3",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeWalletInactive, appErr.Code)
}

func TestLedgerService_Debit_WalletNotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByChildIDForUpdate(ctx, tx, childID).Return(nil, nil)

	_, err := d.svc.Debit(ctx, ports.LedgerEntryRequest{
		ChildID:     childID,
		Amount:      100_00,
		Source:      domain.TransactionSourcePurchase,
		ReferenceID: "req-4",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

// ==================== SpendInWindow / Snapshot ====================

func TestLedgerService_SpendInWindow(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	tx := &mockTx{}
	since := time.Now().UTC().Truncate(24 * time.Hour)

	d.txRepo.EXPECT().SumPurchaseDebitsSince(ctx, tx, walletID, since).Return(int64(700_00), nil)

	total, err := d.svc.SpendInWindow(ctx, tx, walletID, since)
	require.NoError(t, err)
	assert.Equal(t, int64(700_00), total)
}

func TestLedgerService_Snapshot_NotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()

	d.walletRepo.EXPECT().GetByChildID(ctx, childID).Return(nil, nil)

	_, err := d.svc.Snapshot(ctx, childID)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestLedgerService_EnsureWallet_Existing(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	wallet := activeWallet(childID, 50_00)

	d.walletRepo.EXPECT().GetByChildID(ctx, childID).Return(wallet, nil)

	got, err := d.svc.EnsureWallet(ctx, childID)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, got.ID)
}
