package postgres

import (
	"context"
	"errors"
	"fmt"

	"family-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, child_id, currency, balance, total_credited, total_debited, active, created_at, updated_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.ChildID, &w.Currency, &w.Balance,
		&w.TotalCredited, &w.TotalDebited, &w.Active,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Create inserts a new wallet within a database transaction.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, child_id, currency, balance, total_credited, total_debited, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.ChildID, w.Currency, w.Balance,
		w.TotalCredited, w.TotalDebited, w.Active,
		w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByChildID fetches a wallet by child ID (non-locking read).
func (r *WalletRepo) GetByChildID(ctx context.Context, childID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE child_id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, childID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by child id: %w", err)
	}
	return w, nil
}

// GetByChildIDForUpdate fetches a wallet by child ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByChildIDForUpdate(ctx context.Context, tx pgx.Tx, childID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE child_id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, childID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update by child: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a wallet by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update by id: %w", err)
	}
	return w, nil
}

// UpdateBalances writes a wallet's balance counters within a transaction.
// The caller must hold the row lock and have recomputed the counters so that
// balance = total_credited - total_debited.
func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance, totalCredited, totalDebited int64) error {
	query := `UPDATE wallets SET balance = $1, total_credited = $2, total_debited = $3, updated_at = NOW() WHERE id = $4`

	tag, err := tx.Exec(ctx, query, balance, totalCredited, totalDebited, walletID)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

// SetActive toggles a wallet's active flag.
func (r *WalletRepo) SetActive(ctx context.Context, childID uuid.UUID, active bool) error {
	query := `UPDATE wallets SET active = $1, updated_at = NOW() WHERE child_id = $2`

	tag, err := r.pool.Exec(ctx, query, active, childID)
	if err != nil {
		return fmt.Errorf("set wallet active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found for child: %s", childID)
	}
	return nil
}
