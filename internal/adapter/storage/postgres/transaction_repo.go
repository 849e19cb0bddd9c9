package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"family-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, wallet_id, kind, amount, source, reference_id, created_at`

// Create inserts a ledger entry within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, wallet_id, kind, amount, source, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.Kind, t.Amount, t.Source, t.ReferenceID, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByReference fetches a ledger entry by wallet and reference ID inside a
// transaction. Used for idempotency checks while the wallet row is locked.
func (r *TransactionRepo) GetByReference(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, referenceID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 AND reference_id = $2`

	t := &domain.Transaction{}
	err := tx.QueryRow(ctx, query, walletID, referenceID).Scan(
		&t.ID, &t.WalletID, &t.Kind, &t.Amount, &t.Source, &t.ReferenceID, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}
	return t, nil
}

// SumPurchaseDebitsSince sums purchase debits created at or after the given
// instant. Runs inside the caller's transaction so the total is consistent
// with the locked wallet row.
func (r *TransactionRepo) SumPurchaseDebitsSince(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE wallet_id = $1 AND kind = 'debit' AND source = 'purchase' AND created_at >= $2`

	var total int64
	if err := tx.QueryRow(ctx, query, walletID, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum purchase debits: %w", err)
	}
	return total, nil
}

// List returns a page of ledger entries for a wallet, newest first, along
// with the total entry count.
func (r *TransactionRepo) List(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE wallet_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, walletID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var entries []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Kind, &t.Amount, &t.Source, &t.ReferenceID, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transactions: %w", err)
	}
	return entries, total, nil
}
