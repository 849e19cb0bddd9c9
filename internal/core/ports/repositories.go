package ports

import (
	"context"
	"time"

	"family-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic
// locking; all balance mutations for one wallet serialize on its row lock.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByChildID(ctx context.Context, childID uuid.UUID) (*domain.Wallet, error)
	GetByChildIDForUpdate(ctx context.Context, tx pgx.Tx, childID uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	// UpdateBalances writes the derived balance columns. Callers must hold
	// the row lock and preserve balance == total_credited - total_debited.
	UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance, totalCredited, totalDebited int64) error
	SetActive(ctx context.Context, childID uuid.UUID, active bool) error
}

// TransactionRepository defines persistence for the append-only ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	// GetByReference returns the existing entry for a wallet+reference pair,
	// or nil. Runs inside the wallet-locking transaction so the idempotency
	// check is race-free.
	GetByReference(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, referenceID string) (*domain.Transaction, error)
	// SumPurchaseDebitsSince aggregates purchase debits created at or after
	// since, inside the same transaction that will write the next debit.
	SumPurchaseDebitsSince(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, since time.Time) (int64, error)
	List(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error)
}

// ApprovalSettingsRepository defines persistence for spending policies.
type ApprovalSettingsRepository interface {
	Get(ctx context.Context, childID uuid.UUID) (*domain.ApprovalSettings, error)
	Upsert(ctx context.Context, settings *domain.ApprovalSettings) error
}

// PurchaseRequestRepository defines persistence for purchase requests.
type PurchaseRequestRepository interface {
	Create(ctx context.Context, tx pgx.Tx, request *domain.PurchaseRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseRequest, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PurchaseRequest, error)
	// MarkDecided performs the guarded pending -> terminal transition.
	// Returns false when the request was no longer pending (the caller lost
	// a decision race).
	MarkDecided(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.RequestStatus, decidedBy string, reason *string, decidedAt time.Time) (bool, error)
	// Expire transitions a single overdue pending request to expired.
	// The guard (status = pending AND expires_at <= now) makes it safe to
	// call from any number of reaper instances.
	Expire(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	List(ctx context.Context, params PurchaseListParams) ([]domain.PurchaseRequest, error)
	ListExpirable(ctx context.Context, now time.Time, limit int) ([]domain.PurchaseRequest, error)
}

// PurchaseListParams filters the purchase request listing.
type PurchaseListParams struct {
	ChildID *uuid.UUID
	Status  *domain.RequestStatus
	Limit   int
}

// PaymentSessionRepository defines persistence for top-up sessions.
type PaymentSessionRepository interface {
	Create(ctx context.Context, session *domain.PaymentSession) error
	GetByID(ctx context.Context, id string) (*domain.PaymentSession, error)
	// MarkResolved performs the guarded pending -> terminal transition.
	// Returns false when the session had already resolved.
	MarkResolved(ctx context.Context, id string, status domain.SessionStatus, reason *domain.FailureReason, resolvedAt time.Time) (bool, error)
	// MarkReconciled flips a timeout-failed session to completed after a
	// late gateway confirmation. Guarded on status = failed with reason
	// timeout; gateway-declined sessions are never reconciled.
	MarkReconciled(ctx context.Context, id string, resolvedAt time.Time) (bool, error)
	ListPending(ctx context.Context, limit int) ([]domain.PaymentSession, error)
	ListTimedOut(ctx context.Context, since time.Time, limit int) ([]domain.PaymentSession, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
