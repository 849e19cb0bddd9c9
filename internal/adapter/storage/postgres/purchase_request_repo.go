package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PurchaseRequestRepo implements ports.PurchaseRequestRepository.
type PurchaseRequestRepo struct {
	pool Pool
}

// NewPurchaseRequestRepo creates a new PurchaseRequestRepo.
func NewPurchaseRequestRepo(pool Pool) *PurchaseRequestRepo {
	return &PurchaseRequestRepo{pool: pool}
}

const purchaseRequestColumns = `id, child_id, wallet_id, item_name, purchase_type, amount, currency, status, created_at, expires_at, decided_at, decided_by, rejection_reason`

func scanPurchaseRequest(row pgx.Row) (*domain.PurchaseRequest, error) {
	p := &domain.PurchaseRequest{}
	err := row.Scan(
		&p.ID, &p.ChildID, &p.WalletID, &p.ItemName, &p.PurchaseType,
		&p.Amount, &p.Currency, &p.Status, &p.CreatedAt, &p.ExpiresAt,
		&p.DecidedAt, &p.DecidedBy, &p.RejectionReason,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a purchase request within a database transaction.
func (r *PurchaseRequestRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PurchaseRequest) error {
	query := `INSERT INTO purchase_requests (id, child_id, wallet_id, item_name, purchase_type, amount, currency, status, created_at, expires_at, decided_at, decided_by, rejection_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.ChildID, p.WalletID, p.ItemName, p.PurchaseType,
		p.Amount, p.Currency, p.Status, p.CreatedAt, p.ExpiresAt,
		p.DecidedAt, p.DecidedBy, p.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("insert purchase request: %w", err)
	}
	return nil
}

// GetByID fetches a purchase request (non-locking read).
func (r *PurchaseRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseRequest, error) {
	query := `SELECT ` + purchaseRequestColumns + ` FROM purchase_requests WHERE id = $1`

	p, err := scanPurchaseRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase request: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate fetches a purchase request with pessimistic locking.
// This MUST be called within a transaction.
func (r *PurchaseRequestRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PurchaseRequest, error) {
	query := `SELECT ` + purchaseRequestColumns + ` FROM purchase_requests WHERE id = $1 FOR UPDATE`

	p, err := scanPurchaseRequest(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase request for update: %w", err)
	}
	return p, nil
}

// MarkDecided transitions a pending request to a terminal status. Returns
// false when the request was no longer pending, so concurrent deciders get
// exactly one winner.
func (r *PurchaseRequestRepo) MarkDecided(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.RequestStatus, decidedBy string, reason *string, decidedAt time.Time) (bool, error) {
	query := `UPDATE purchase_requests
		SET status = $1, decided_by = $2, rejection_reason = $3, decided_at = $4
		WHERE id = $5 AND status = 'pending'`

	tag, err := tx.Exec(ctx, query, status, decidedBy, reason, decidedAt, id)
	if err != nil {
		return false, fmt.Errorf("mark purchase request decided: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Expire transitions a pending request past its deadline to expired. Guarded
// the same way as MarkDecided so a parent decision racing the sweep loses at
// most one side.
func (r *PurchaseRequestRepo) Expire(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `UPDATE purchase_requests
		SET status = 'expired', decided_by = 'system', decided_at = $1
		WHERE id = $2 AND status = 'pending' AND expires_at <= $1`

	tag, err := r.pool.Exec(ctx, query, now, id)
	if err != nil {
		return false, fmt.Errorf("expire purchase request: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns purchase requests filtered by child and status, newest first.
func (r *PurchaseRequestRepo) List(ctx context.Context, params ports.PurchaseListParams) ([]domain.PurchaseRequest, error) {
	query := `SELECT ` + purchaseRequestColumns + ` FROM purchase_requests WHERE 1=1`
	args := []any{}
	idx := 1

	if params.ChildID != nil {
		query += fmt.Sprintf(" AND child_id = $%d", idx)
		args = append(args, *params.ChildID)
		idx++
	}
	if params.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, *params.Status)
		idx++
	}
	query += " ORDER BY created_at DESC"
	limit := params.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}
	query += fmt.Sprintf(" LIMIT $%d", idx)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase requests: %w", err)
	}
	defer rows.Close()

	return collectPurchaseRequests(rows)
}

// ListExpirable returns pending requests whose review window has elapsed.
func (r *PurchaseRequestRepo) ListExpirable(ctx context.Context, now time.Time, limit int) ([]domain.PurchaseRequest, error) {
	query := `SELECT ` + purchaseRequestColumns + ` FROM purchase_requests
		WHERE status = 'pending' AND expires_at <= $1
		ORDER BY expires_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expirable purchase requests: %w", err)
	}
	defer rows.Close()

	return collectPurchaseRequests(rows)
}

func collectPurchaseRequests(rows pgx.Rows) ([]domain.PurchaseRequest, error) {
	var out []domain.PurchaseRequest
	for rows.Next() {
		var p domain.PurchaseRequest
		if err := rows.Scan(
			&p.ID, &p.ChildID, &p.WalletID, &p.ItemName, &p.PurchaseType,
			&p.Amount, &p.Currency, &p.Status, &p.CreatedAt, &p.ExpiresAt,
			&p.DecidedAt, &p.DecidedBy, &p.RejectionReason,
		); err != nil {
			return nil, fmt.Errorf("scan purchase request: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase requests: %w", err)
	}
	return out, nil
}
