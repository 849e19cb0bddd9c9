package postgres

import (
	"context"
	"testing"
	"time"

	"family-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest() *domain.PurchaseRequest {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PurchaseRequest{
		ID:           uuid.New(),
		ChildID:      uuid.New(),
		WalletID:     uuid.New(),
		ItemName:     "Minecraft",
		PurchaseType: "game",
		Amount:       350_00,
		Currency:     domain.DefaultCurrency,
		Status:       domain.RequestStatusPending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(24 * time.Hour),
	}
}

func requestTestColumns() []string {
	return []string{"id", "child_id", "wallet_id", "item_name", "purchase_type", "amount", "currency", "status", "created_at", "expires_at", "decided_at", "decided_by", "rejection_reason"}
}

func requestRow(p *domain.PurchaseRequest) *pgxmock.Rows {
	return pgxmock.NewRows(requestTestColumns()).AddRow(
		p.ID, p.ChildID, p.WalletID, p.ItemName, p.PurchaseType,
		p.Amount, p.Currency, p.Status, p.CreatedAt, p.ExpiresAt,
		p.DecidedAt, p.DecidedBy, p.RejectionReason,
	)
}

func TestPurchaseRequestRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRequestRepo(mock)
	p := newTestRequest()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM purchase_requests WHERE id .+ FOR UPDATE").
		WithArgs(p.ID).
		WillReturnRows(requestRow(p))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.Equal(t, domain.RequestStatusPending, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseRequestRepo_MarkDecided_Winner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRequestRepo(mock)
	id := uuid.New()
	parentID := uuid.New().String()
	decidedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE purchase_requests").
		WithArgs(domain.RequestStatusApproved, parentID, (*string)(nil), decidedAt, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	won, err := repo.MarkDecided(context.Background(), tx, id, domain.RequestStatusApproved, parentID, nil, decidedAt)
	require.NoError(t, err)
	assert.True(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseRequestRepo_MarkDecided_AlreadyDecided(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRequestRepo(mock)
	id := uuid.New()
	reason := "too expensive"
	decidedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE purchase_requests").
		WithArgs(domain.RequestStatusRejected, domain.DecidedBySystem, &reason, decidedAt, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	won, err := repo.MarkDecided(context.Background(), tx, id, domain.RequestStatusRejected, domain.DecidedBySystem, &reason, decidedAt)
	require.NoError(t, err)
	assert.False(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseRequestRepo_Expire(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRequestRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE purchase_requests").
		WithArgs(now, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	expired, err := repo.Expire(context.Background(), id, now)
	require.NoError(t, err)
	assert.True(t, expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseRequestRepo_ListExpirable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRequestRepo(mock)
	p := newTestRequest()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM purchase_requests").
		WithArgs(now, 100).
		WillReturnRows(requestRow(p))

	result, err := repo.ListExpirable(context.Background(), now, 100)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, p.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
