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
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionTestDeps struct {
	svc         *PaymentSessionServiceImpl
	sessionRepo *mocks.MockPaymentSessionRepository
	ledger      *mocks.MockWalletLedger
	gateway     *mocks.MockPaymentGateway
	cache       *mocks.MockSessionStatusCache
	publisher   *mocks.MockEventPublisher
	ctrl        *gomock.Controller
}

// setupSessionService wires the coordinator with short intervals so the
// background poll loop finishes within the test.
func setupSessionService(t *testing.T, interval, timeout time.Duration) *sessionTestDeps {
	ctrl := gomock.NewController(t)
	d := &sessionTestDeps{
		sessionRepo: mocks.NewMockPaymentSessionRepository(ctrl),
		ledger:      mocks.NewMockWalletLedger(ctrl),
		gateway:     mocks.NewMockPaymentGateway(ctrl),
		cache:       mocks.NewMockSessionStatusCache(ctrl),
		publisher:   mocks.NewMockEventPublisher(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewPaymentSessionService(
		d.sessionRepo, d.ledger, d.gateway, d.cache, d.publisher,
		interval, timeout, zerolog.Nop(),
	)
	return d
}

func waitFor(t *testing.T, done <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal(msg)
	}
}

// ==================== Initiate Tests ====================

func TestSessionService_Initiate_InvalidAmount(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	_, err := d.svc.Initiate(context.Background(), ports.InitiateTopupRequest{
		ChildID:     uuid.New(),
		PhoneNumber: "254712345678",
		Amount:      0,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidAmount, appErr.Code)
}

func TestSessionService_Initiate_RejectsFractionalShillings(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	_, err := d.svc.Initiate(context.Background(), ports.InitiateTopupRequest{
		ChildID:     uuid.New(),
		PhoneNumber: "254712345678",
		Amount:      500_50,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidAmount, appErr.Code)
}

func TestSessionService_Initiate_InvalidPhone(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	for _, phone := range []string{"0712345678", "25471234567", "notaphone", "+254712345678"} {
		_, err := d.svc.Initiate(context.Background(), ports.InitiateTopupRequest{
			ChildID:     uuid.New(),
			PhoneNumber: phone,
			Amount:      500_00,
		})
		require.Error(t, err, "phone %q should be rejected", phone)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidPhoneNumber, appErr.Code)
	}
}

func TestSessionService_Initiate_CompletedSessionCreditsOnce(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	done := make(chan struct{})

	d.ledger.EXPECT().EnsureWallet(ctx, childID).Return(activeWallet(childID, 0), nil)
	d.gateway.EXPECT().InitiateSTKPush(ctx, gomock.Any()).Return("ws_CO_1", nil)
	d.sessionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(gomock.Any(), "ws_CO_1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_CO_1").Return(ports.GatewayStatusCompleted, nil)
	d.ledger.EXPECT().
		Credit(gomock.Any(), ports.LedgerEntryRequest{
			ChildID:     childID,
			Amount:      500_00,
			Source:      domain.TransactionSourceTopup,
			ReferenceID: "ws_CO_1",
		}).
		Return(&domain.Transaction{ID: uuid.New()}, nil)
	d.sessionRepo.EXPECT().
		MarkResolved(gomock.Any(), "ws_CO_1", domain.SessionStatusCompleted, nil, gomock.Any()).
		Return(true, nil)
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(string, any) error {
			close(done)
			return nil
		})

	session, err := d.svc.Initiate(ctx, ports.InitiateTopupRequest{
		ChildID:     childID,
		PhoneNumber: "254712345678",
		Amount:      500_00,
	})
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_1", session.ID)
	assert.Equal(t, domain.SessionStatusPending, session.Status)

	waitFor(t, done, "session never completed")
}

func TestSessionService_Initiate_DeclinedSessionNeverCredits(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	done := make(chan struct{})

	d.ledger.EXPECT().EnsureWallet(ctx, childID).Return(activeWallet(childID, 0), nil)
	d.gateway.EXPECT().InitiateSTKPush(ctx, gomock.Any()).Return("ws_CO_2", nil)
	d.sessionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(gomock.Any(), "ws_CO_2", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_CO_2").Return(ports.GatewayStatusFailed, nil)
	declined := domain.FailureReasonGatewayDeclined
	d.sessionRepo.EXPECT().
		MarkResolved(gomock.Any(), "ws_CO_2", domain.SessionStatusFailed, &declined, gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.SessionStatus, *domain.FailureReason, time.Time) (bool, error) {
			close(done)
			return true, nil
		})
	// No Credit expectation: a decline must never touch the ledger.

	_, err := d.svc.Initiate(ctx, ports.InitiateTopupRequest{
		ChildID:     childID,
		PhoneNumber: "254712345678",
		Amount:      300_00,
	})
	require.NoError(t, err)

	waitFor(t, done, "session never resolved")
}

func TestSessionService_Initiate_TimeoutFailsSession(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, 35*time.Millisecond)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	done := make(chan struct{})

	d.ledger.EXPECT().EnsureWallet(ctx, childID).Return(activeWallet(childID, 0), nil)
	d.gateway.EXPECT().InitiateSTKPush(ctx, gomock.Any()).Return("ws_CO_3", nil)
	d.sessionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(gomock.Any(), "ws_CO_3", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Gateway never resolves within the poll budget.
	d.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_CO_3").
		Return(ports.GatewayStatusPending, nil).AnyTimes()
	timeout := domain.FailureReasonTimeout
	d.sessionRepo.EXPECT().
		MarkResolved(gomock.Any(), "ws_CO_3", domain.SessionStatusFailed, &timeout, gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.SessionStatus, *domain.FailureReason, time.Time) (bool, error) {
			close(done)
			return true, nil
		})

	_, err := d.svc.Initiate(ctx, ports.InitiateTopupRequest{
		ChildID:     childID,
		PhoneNumber: "254712345678",
		Amount:      300_00,
	})
	require.NoError(t, err)

	waitFor(t, done, "session never timed out")
}

// ==================== Status Tests ====================

func TestSessionService_Status_PendingServedFromCache(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, "ws_CO_4").Return(domain.SessionStatusPending, true, nil)
	// No repo call on a pending cache hit.

	session, err := d.svc.Status(ctx, "ws_CO_4")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusPending, session.Status)
}

func TestSessionService_Status_TerminalReadsDatabase(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	ctx := context.Background()
	reason := domain.FailureReasonTimeout
	stored := &domain.PaymentSession{
		ID:            "ws_CO_5",
		Status:        domain.SessionStatusFailed,
		FailureReason: &reason,
	}

	d.cache.EXPECT().Get(ctx, "ws_CO_5").Return(domain.SessionStatus(""), false, nil)
	d.sessionRepo.EXPECT().GetByID(ctx, "ws_CO_5").Return(stored, nil)

	session, err := d.svc.Status(ctx, "ws_CO_5")
	require.NoError(t, err)
	assert.True(t, session.TimedOut())
}

func TestSessionService_Status_NotFound(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, "nope").Return(domain.SessionStatus(""), false, nil)
	d.sessionRepo.EXPECT().GetByID(ctx, "nope").Return(nil, nil)

	_, err := d.svc.Status(ctx, "nope")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

// ==================== Reconcile Tests ====================

func TestSessionService_ReconcileTimedOut_LateCompletionCredits(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	ctx := context.Background()
	childID := uuid.New()
	reason := domain.FailureReasonTimeout
	session := domain.PaymentSession{
		ID:            "ws_CO_6",
		ChildID:       childID,
		Amount:        400_00,
		Status:        domain.SessionStatusFailed,
		FailureReason: &reason,
		CreatedAt:     time.Now().UTC().Add(-time.Hour),
	}

	d.sessionRepo.EXPECT().ListTimedOut(ctx, gomock.Any(), gomock.Any()).
		Return([]domain.PaymentSession{session}, nil)
	d.gateway.EXPECT().QueryStatus(ctx, "ws_CO_6").Return(ports.GatewayStatusCompleted, nil)
	d.ledger.EXPECT().
		Credit(ctx, ports.LedgerEntryRequest{
			ChildID:     childID,
			Amount:      400_00,
			Source:      domain.TransactionSourceTopup,
			ReferenceID: "ws_CO_6",
		}).
		Return(&domain.Transaction{ID: uuid.New()}, nil)
	d.sessionRepo.EXPECT().MarkReconciled(ctx, "ws_CO_6", gomock.Any()).Return(true, nil)
	d.cache.EXPECT().Set(ctx, "ws_CO_6", domain.SessionStatusCompleted, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	recovered, err := d.svc.ReconcileTimedOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)
}

func TestSessionService_ReconcileTimedOut_StillFailedLeavesSession(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, time.Second)
	defer d.ctrl.Finish()

	ctx := context.Background()
	reason := domain.FailureReasonTimeout
	session := domain.PaymentSession{
		ID:            "ws_CO_7",
		ChildID:       uuid.New(),
		Amount:        400_00,
		Status:        domain.SessionStatusFailed,
		FailureReason: &reason,
		CreatedAt:     time.Now().UTC().Add(-time.Hour),
	}

	d.sessionRepo.EXPECT().ListTimedOut(ctx, gomock.Any(), gomock.Any()).
		Return([]domain.PaymentSession{session}, nil)
	d.gateway.EXPECT().QueryStatus(ctx, "ws_CO_7").Return(ports.GatewayStatusFailed, nil)
	// No credit, no update.

	recovered, err := d.svc.ReconcileTimedOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, recovered)
}

// ==================== ResumePending Tests ====================

func TestSessionService_ResumePending_LapsedSessionFailsImmediately(t *testing.T) {
	d := setupSessionService(t, 10*time.Millisecond, 50*time.Millisecond)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stale := domain.PaymentSession{
		ID:        "ws_CO_8",
		ChildID:   uuid.New(),
		Amount:    100_00,
		Status:    domain.SessionStatusPending,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}

	d.sessionRepo.EXPECT().ListPending(ctx, gomock.Any()).
		Return([]domain.PaymentSession{stale}, nil)
	timeout := domain.FailureReasonTimeout
	d.sessionRepo.EXPECT().
		MarkResolved(gomock.Any(), "ws_CO_8", domain.SessionStatusFailed, &timeout, gomock.Any()).
		Return(true, nil)
	d.cache.EXPECT().Set(gomock.Any(), "ws_CO_8", domain.SessionStatusFailed, gomock.Any()).Return(nil)

	err := d.svc.ResumePending(ctx)
	require.NoError(t, err)
}
