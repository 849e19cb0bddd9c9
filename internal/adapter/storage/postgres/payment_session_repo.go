package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"family-wallet-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentSessionRepo implements ports.PaymentSessionRepository.
type PaymentSessionRepo struct {
	pool Pool
}

// NewPaymentSessionRepo creates a new PaymentSessionRepo.
func NewPaymentSessionRepo(pool Pool) *PaymentSessionRepo {
	return &PaymentSessionRepo{pool: pool}
}

const paymentSessionColumns = `id, child_id, phone_number, amount, status, failure_reason, created_at, resolved_at`

func scanPaymentSession(row pgx.Row) (*domain.PaymentSession, error) {
	s := &domain.PaymentSession{}
	err := row.Scan(
		&s.ID, &s.ChildID, &s.PhoneNumber, &s.Amount,
		&s.Status, &s.FailureReason, &s.CreatedAt, &s.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new payment session.
func (r *PaymentSessionRepo) Create(ctx context.Context, s *domain.PaymentSession) error {
	query := `INSERT INTO payment_sessions (id, child_id, phone_number, amount, status, failure_reason, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.ChildID, s.PhoneNumber, s.Amount,
		s.Status, s.FailureReason, s.CreatedAt, s.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment session: %w", err)
	}
	return nil
}

// GetByID fetches a payment session by checkout request id.
func (r *PaymentSessionRepo) GetByID(ctx context.Context, id string) (*domain.PaymentSession, error) {
	query := `SELECT ` + paymentSessionColumns + ` FROM payment_sessions WHERE id = $1`

	s, err := scanPaymentSession(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment session: %w", err)
	}
	return s, nil
}

// MarkResolved transitions a pending session to a terminal status. Returns
// false when the session had already resolved, which makes the poller, the
// resume path and the reconciler safe to race.
func (r *PaymentSessionRepo) MarkResolved(ctx context.Context, id string, status domain.SessionStatus, reason *domain.FailureReason, resolvedAt time.Time) (bool, error) {
	query := `UPDATE payment_sessions
		SET status = $1, failure_reason = $2, resolved_at = $3
		WHERE id = $4 AND status = 'pending'`

	tag, err := r.pool.Exec(ctx, query, status, reason, resolvedAt, id)
	if err != nil {
		return false, fmt.Errorf("resolve payment session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkReconciled flips a timed-out session to completed after the gateway
// later reported success. Only timeout failures are eligible.
func (r *PaymentSessionRepo) MarkReconciled(ctx context.Context, id string, resolvedAt time.Time) (bool, error) {
	query := `UPDATE payment_sessions
		SET status = 'completed', failure_reason = NULL, resolved_at = $1
		WHERE id = $2 AND status = 'failed' AND failure_reason = 'timeout'`

	tag, err := r.pool.Exec(ctx, query, resolvedAt, id)
	if err != nil {
		return false, fmt.Errorf("reconcile payment session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListPending returns unresolved sessions, oldest first. Used on startup to
// resume polling for sessions orphaned by a crash.
func (r *PaymentSessionRepo) ListPending(ctx context.Context, limit int) ([]domain.PaymentSession, error) {
	query := `SELECT ` + paymentSessionColumns + ` FROM payment_sessions
		WHERE status = 'pending' ORDER BY created_at ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending payment sessions: %w", err)
	}
	defer rows.Close()

	return collectPaymentSessions(rows)
}

// ListTimedOut returns timeout-failed sessions created at or after the given
// instant, the candidates for reconciliation.
func (r *PaymentSessionRepo) ListTimedOut(ctx context.Context, since time.Time, limit int) ([]domain.PaymentSession, error) {
	query := `SELECT ` + paymentSessionColumns + ` FROM payment_sessions
		WHERE status = 'failed' AND failure_reason = 'timeout' AND created_at >= $1
		ORDER BY created_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("list timed out payment sessions: %w", err)
	}
	defer rows.Close()

	return collectPaymentSessions(rows)
}

func collectPaymentSessions(rows pgx.Rows) ([]domain.PaymentSession, error) {
	var out []domain.PaymentSession
	for rows.Next() {
		var s domain.PaymentSession
		if err := rows.Scan(
			&s.ID, &s.ChildID, &s.PhoneNumber, &s.Amount,
			&s.Status, &s.FailureReason, &s.CreatedAt, &s.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment session: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment sessions: %w", err)
	}
	return out, nil
}
