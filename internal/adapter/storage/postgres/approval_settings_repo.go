package postgres

import (
	"context"
	"errors"
	"fmt"

	"family-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ApprovalSettingsRepo implements ports.ApprovalSettingsRepository.
type ApprovalSettingsRepo struct {
	pool Pool
}

// NewApprovalSettingsRepo creates a new ApprovalSettingsRepo.
func NewApprovalSettingsRepo(pool Pool) *ApprovalSettingsRepo {
	return &ApprovalSettingsRepo{pool: pool}
}

// Get fetches the approval settings for a child. Returns nil when the child
// has no explicit settings row.
func (r *ApprovalSettingsRepo) Get(ctx context.Context, childID uuid.UUID) (*domain.ApprovalSettings, error) {
	query := `SELECT child_id, mode, per_purchase_limit, daily_limit, monthly_limit, updated_at
		FROM approval_settings WHERE child_id = $1`

	s := &domain.ApprovalSettings{}
	err := r.pool.QueryRow(ctx, query, childID).Scan(
		&s.ChildID, &s.Mode, &s.PerPurchaseLimit, &s.DailyLimit, &s.MonthlyLimit, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get approval settings: %w", err)
	}
	return s, nil
}

// Upsert writes the approval settings for a child, replacing any existing row.
func (r *ApprovalSettingsRepo) Upsert(ctx context.Context, s *domain.ApprovalSettings) error {
	query := `INSERT INTO approval_settings (child_id, mode, per_purchase_limit, daily_limit, monthly_limit, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (child_id) DO UPDATE SET
			mode = EXCLUDED.mode,
			per_purchase_limit = EXCLUDED.per_purchase_limit,
			daily_limit = EXCLUDED.daily_limit,
			monthly_limit = EXCLUDED.monthly_limit,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		s.ChildID, s.Mode, s.PerPurchaseLimit, s.DailyLimit, s.MonthlyLimit, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert approval settings: %w", err)
	}
	return nil
}
