package ports

import (
	"context"
	"time"

	"family-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletLedger is the only component permitted to mutate wallet balances.
// Credit and Debit are idempotent per reference: a repeated call with the
// same reference returns the original transaction without a second mutation.
type WalletLedger interface {
	Credit(ctx context.Context, req LedgerEntryRequest) (*domain.Transaction, error)
	Debit(ctx context.Context, req LedgerEntryRequest) (*domain.Transaction, error)
	// DebitInTx debits a wallet already locked by the caller's transaction.
	// Used by the purchase registry so a policy read and its debit commit
	// atomically.
	DebitInTx(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet, amount int64, source domain.TransactionSource, referenceID string) (*domain.Transaction, error)
	// SpendInWindow sums purchase debits since a timestamp, consistent with
	// any debit written in the same transaction.
	SpendInWindow(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, since time.Time) (int64, error)
	Snapshot(ctx context.Context, childID uuid.UUID) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, childID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error)
	// EnsureWallet provisions a wallet on first use.
	EnsureWallet(ctx context.Context, childID uuid.UUID) (*domain.Wallet, error)
}

// LedgerEntryRequest holds validated input for a credit or debit.
type LedgerEntryRequest struct {
	ChildID     uuid.UUID
	Amount      int64
	Source      domain.TransactionSource
	ReferenceID string
}

// PurchaseService owns the purchase-request lifecycle and approval settings.
type PurchaseService interface {
	Create(ctx context.Context, req CreatePurchaseRequest) (*domain.PurchaseRequest, error)
	Approve(ctx context.Context, requestID, parentID uuid.UUID) (*domain.PurchaseRequest, error)
	Reject(ctx context.Context, requestID, parentID uuid.UUID, reason *string) (*domain.PurchaseRequest, error)
	List(ctx context.Context, params PurchaseListParams) ([]domain.PurchaseRequest, error)
	// ExpireDue sweeps overdue pending requests; returns how many expired.
	ExpireDue(ctx context.Context, now time.Time, limit int) (int, error)
	GetSettings(ctx context.Context, childID uuid.UUID) (*domain.ApprovalSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.ApprovalSettings) error
}

// CreatePurchaseRequest holds validated input for a purchase attempt.
type CreatePurchaseRequest struct {
	ChildID      uuid.UUID
	ItemName     string
	PurchaseType string
	Amount       int64
}

// PaymentSessionService drives asynchronous mobile-money top-ups.
type PaymentSessionService interface {
	// Initiate calls the gateway and returns immediately; polling continues
	// server-side regardless of what the initiating client does.
	Initiate(ctx context.Context, req InitiateTopupRequest) (*domain.PaymentSession, error)
	Status(ctx context.Context, sessionID string) (*domain.PaymentSession, error)
	// ResumePending restarts polling for sessions left pending by a restart.
	ResumePending(ctx context.Context) error
	// ReconcileTimedOut re-queries the gateway for sessions we force-failed
	// on timeout; a late confirmation still credits exactly once.
	ReconcileTimedOut(ctx context.Context) (int, error)
}

// InitiateTopupRequest holds validated input for an STK push top-up.
type InitiateTopupRequest struct {
	ChildID          uuid.UUID
	PhoneNumber      string
	Amount           int64
	AccountReference string
	TransactionDesc  string
}

// SessionStatusCache caches payment session status for the client poll loop.
type SessionStatusCache interface {
	// Get returns the cached status; found is false on a cache miss.
	Get(ctx context.Context, sessionID string) (status domain.SessionStatus, found bool, err error)
	Set(ctx context.Context, sessionID string, status domain.SessionStatus, ttl time.Duration) error
}

// EventPublisher emits domain events for external consumers (the
// notification service). Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(topic string, payload any) error
}
