package service

import (
	"context"
	"fmt"
	"time"

	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerService implements ports.WalletLedger with pessimistic locking.
// Every mutation locks the wallet row, re-checks idempotency under the lock,
// and writes the ledger entry and the new counters in one transaction.
type LedgerService struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerService {
	return &LedgerService{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		log:        log,
	}
}

// Credit adds funds to a child's wallet, provisioning the wallet on first
// use. Replays with the same reference return the original entry.
func (s *LedgerService) Credit(ctx context.Context, req ports.LedgerEntryRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.ReferenceID == "" {
		return nil, apperror.Validation("reference_id is required")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByChildIDForUpdate(ctx, dbTx, req.ChildID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		wallet = domain.NewWallet(req.ChildID, domain.DefaultCurrency)
		if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
		}
	}

	// Idempotency: a replay finds the original entry under the lock.
	existing, err := s.txRepo.GetByReference(ctx, dbTx, wallet.ID, req.ReferenceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("idempotency check: %w", err))
	}
	if existing != nil {
		s.log.Debug().
			Str("reference_id", req.ReferenceID).
			Str("wallet_id", wallet.ID.String()).
			Msg("credit replay, returning original entry")
		return existing, nil
	}

	wallet.TotalCredited += req.Amount
	wallet.Balance = wallet.TotalCredited - wallet.TotalDebited

	txn := &domain.Transaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		Kind:        domain.TransactionKindCredit,
		Amount:      req.Amount,
		Source:      req.Source,
		ReferenceID: req.ReferenceID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet.ID, wallet.Balance, wallet.TotalCredited, wallet.TotalDebited); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit credit: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Int64("amount", req.Amount).
		Str("source", string(req.Source)).
		Str("reference_id", req.ReferenceID).
		Msg("wallet credited")

	return txn, nil
}

// Debit removes funds from a child's wallet. Fails with InsufficientFunds
// when the balance cannot cover the amount; the wallet is never overdrawn.
func (s *LedgerService) Debit(ctx context.Context, req ports.LedgerEntryRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.ReferenceID == "" {
		return nil, apperror.Validation("reference_id is required")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByChildIDForUpdate(ctx, dbTx, req.ChildID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	txn, err := s.DebitInTx(ctx, dbTx, wallet, req.Amount, req.Source, req.ReferenceID)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit debit: %w", err))
	}
	return txn, nil
}

// DebitInTx debits a wallet the caller has already locked. The caller owns
// the transaction and the commit.
func (s *LedgerService) DebitInTx(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet, amount int64, source domain.TransactionSource, referenceID string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !wallet.Active {
		return nil, apperror.ErrWalletInactive()
	}

	existing, err := s.txRepo.GetByReference(ctx, tx, wallet.ID, referenceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("idempotency check: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	if !wallet.CanCover(amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	wallet.TotalDebited += amount
	wallet.Balance = wallet.TotalCredited - wallet.TotalDebited

	txn := &domain.Transaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		Kind:        domain.TransactionKindDebit,
		Amount:      amount,
		Source:      source,
		ReferenceID: referenceID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.walletRepo.UpdateBalances(ctx, tx, wallet.ID, wallet.Balance, wallet.TotalCredited, wallet.TotalDebited); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := s.txRepo.Create(ctx, tx, txn); err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Int64("amount", amount).
		Str("source", string(source)).
		Str("reference_id", referenceID).
		Msg("wallet debited")

	return txn, nil
}

// SpendInWindow sums committed purchase debits since a timestamp using the
// caller's transaction.
func (s *LedgerService) SpendInWindow(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, since time.Time) (int64, error) {
	total, err := s.txRepo.SumPurchaseDebitsSince(ctx, tx, walletID, since)
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	return total, nil
}

// Snapshot returns the current wallet state for a child.
func (s *LedgerService) Snapshot(ctx context.Context, childID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByChildID(ctx, childID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

// ListTransactions returns a page of the child's ledger history.
func (s *LedgerService) ListTransactions(ctx context.Context, childID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error) {
	wallet, err := s.walletRepo.GetByChildID(ctx, childID)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	if wallet == nil {
		return nil, 0, apperror.ErrNotFound("wallet")
	}
	entries, total, err := s.txRepo.List(ctx, wallet.ID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return entries, total, nil
}

// EnsureWallet returns the child's wallet, provisioning an empty one when
// none exists yet.
func (s *LedgerService) EnsureWallet(ctx context.Context, childID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByChildID(ctx, childID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if wallet != nil {
		return wallet, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet = domain.NewWallet(childID, domain.DefaultCurrency)
	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		// A concurrent provision may have won the unique constraint race.
		if existing, getErr := s.walletRepo.GetByChildID(ctx, childID); getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit wallet create: %w", err))
	}
	return wallet, nil
}
