package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/internal/stream"
	"family-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// phonePattern matches Kenyan MSISDNs in international format (2547XXXXXXXX
// or 2541XXXXXXXX), which is what the STK push API accepts.
var phonePattern = regexp.MustCompile(`^254(7|1)\d{8}$`)

// reconcileWindow bounds how far back the reconciler re-queries timed-out
// sessions. Older sessions stay failed.
const reconcileWindow = 7 * 24 * time.Hour

// statusCacheTTL keeps the cached status alive slightly past the poll
// budget so late client polls still hit the cache.
const statusCacheTTL = 5 * time.Minute

// resumeBatchSize caps how many orphaned sessions a restart picks back up.
const resumeBatchSize = 500

// minorUnitsPerShilling converts ledger amounts (cents) to the whole
// shillings the STK push prompt charges. Top-ups must come in whole
// shillings so the prompt amount and the eventual credit always agree.
const minorUnitsPerShilling = 100

// TopupEvent is the payload published when a top-up completes.
type TopupEvent struct {
	SessionID string `json:"session_id"`
	ChildID   string `json:"child_id"`
	Amount    int64  `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// PaymentSessionServiceImpl implements ports.PaymentSessionService. It owns
// the server-side poll loop: once a session is initiated its outcome no
// longer depends on the client staying connected.
type PaymentSessionServiceImpl struct {
	sessionRepo  ports.PaymentSessionRepository
	ledger       ports.WalletLedger
	gateway      ports.PaymentGateway
	cache        ports.SessionStatusCache // optional, may be nil
	publisher    ports.EventPublisher     // optional, may be nil
	pollInterval time.Duration
	pollTimeout  time.Duration
	log          zerolog.Logger
}

// NewPaymentSessionService creates a new PaymentSessionServiceImpl.
func NewPaymentSessionService(
	sessionRepo ports.PaymentSessionRepository,
	ledger ports.WalletLedger,
	gateway ports.PaymentGateway,
	cache ports.SessionStatusCache,
	publisher ports.EventPublisher,
	pollInterval time.Duration,
	pollTimeout time.Duration,
	log zerolog.Logger,
) *PaymentSessionServiceImpl {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	if pollTimeout <= 0 {
		pollTimeout = 120 * time.Second
	}
	return &PaymentSessionServiceImpl{
		sessionRepo:  sessionRepo,
		ledger:       ledger,
		gateway:      gateway,
		cache:        cache,
		publisher:    publisher,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		log:          log,
	}
}

// Initiate sends the STK push, persists the pending session and starts the
// background poll loop.
func (s *PaymentSessionServiceImpl) Initiate(ctx context.Context, req ports.InitiateTopupRequest) (*domain.PaymentSession, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Amount%minorUnitsPerShilling != 0 {
		return nil, apperror.Validation("amount must be a whole number of shillings")
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return nil, apperror.ErrInvalidPhoneNumber()
	}

	// Provision the wallet up front so a completed session can always land.
	if _, err := s.ledger.EnsureWallet(ctx, req.ChildID); err != nil {
		return nil, err
	}

	desc := req.TransactionDesc
	if desc == "" {
		desc = "Wallet top up"
	}
	ref := req.AccountReference
	if ref == "" {
		ref = "topup-" + req.ChildID.String()
	}

	checkoutID, err := s.gateway.InitiateSTKPush(ctx, ports.STKPushRequest{
		PhoneNumber:      req.PhoneNumber,
		Amount:           req.Amount,
		AccountReference: ref,
		TransactionDesc:  desc,
	})
	if err != nil {
		return nil, err
	}

	session := &domain.PaymentSession{
		ID:          checkoutID,
		ChildID:     req.ChildID,
		PhoneNumber: req.PhoneNumber,
		Amount:      req.Amount,
		Status:      domain.SessionStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist payment session: %w", err))
	}
	s.cacheStatus(ctx, session.ID, domain.SessionStatusPending)

	s.log.Info().
		Str("session_id", session.ID).
		Str("child_id", req.ChildID.String()).
		Int64("amount", req.Amount).
		Msg("top-up session initiated")

	go s.poll(session, session.CreatedAt.Add(s.pollTimeout))
	return session, nil
}

// Status returns the session's current state. Pending sessions are answered
// from the cache when possible so client polling does not hammer the
// database.
func (s *PaymentSessionServiceImpl) Status(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	if s.cache != nil {
		if status, found, err := s.cache.Get(ctx, sessionID); err == nil && found && status == domain.SessionStatusPending {
			return &domain.PaymentSession{ID: sessionID, Status: status}, nil
		}
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if session == nil {
		return nil, apperror.ErrNotFound("payment session")
	}
	return session, nil
}

// ResumePending restarts the poll loop for sessions orphaned by a restart.
// Sessions whose poll budget already elapsed are failed as timeouts right
// away; the reconciler can still rescue them later.
func (s *PaymentSessionServiceImpl) ResumePending(ctx context.Context) error {
	pending, err := s.sessionRepo.ListPending(ctx, resumeBatchSize)
	if err != nil {
		return apperror.InternalError(err)
	}

	now := time.Now().UTC()
	resumed, lapsed := 0, 0
	for i := range pending {
		session := pending[i]
		deadline := session.CreatedAt.Add(s.pollTimeout)
		if !now.Before(deadline) {
			s.failSession(context.Background(), &session, domain.FailureReasonTimeout)
			lapsed++
			continue
		}
		go s.poll(&session, deadline)
		resumed++
	}

	if resumed+lapsed > 0 {
		s.log.Info().
			Int("resumed", resumed).
			Int("timed_out", lapsed).
			Msg("recovered pending payment sessions")
	}
	return nil
}

// ReconcileTimedOut re-queries the gateway for sessions that failed on
// timeout. A late completion credits the wallet exactly once and flips the
// session back to completed. Declined and cancelled sessions are final and
// never revisited.
func (s *PaymentSessionServiceImpl) ReconcileTimedOut(ctx context.Context) (int, error) {
	since := time.Now().UTC().Add(-reconcileWindow)
	candidates, err := s.sessionRepo.ListTimedOut(ctx, since, resumeBatchSize)
	if err != nil {
		return 0, apperror.InternalError(err)
	}

	recovered := 0
	for i := range candidates {
		session := candidates[i]
		status, err := s.gateway.QueryStatus(ctx, session.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("session_id", session.ID).Msg("reconcile query failed")
			continue
		}
		if status != ports.GatewayStatusCompleted {
			continue
		}

		if err := s.creditSession(ctx, &session); err != nil {
			s.log.Error().Err(err).Str("session_id", session.ID).Msg("reconcile credit failed")
			continue
		}
		won, err := s.sessionRepo.MarkReconciled(ctx, session.ID, time.Now().UTC())
		if err != nil {
			s.log.Error().Err(err).Str("session_id", session.ID).Msg("reconcile update failed")
			continue
		}
		if won {
			recovered++
			s.cacheStatus(ctx, session.ID, domain.SessionStatusCompleted)
			s.publishTopup(&session)
			s.log.Info().Str("session_id", session.ID).Msg("timed-out session reconciled as completed")
		}
	}
	return recovered, nil
}

// poll drives one session to a terminal state. It runs detached from any
// request context: the initiating HTTP request finishing must not stop it.
func (s *PaymentSessionServiceImpl) poll(session *domain.PaymentSession, deadline time.Time) {
	ctx := context.Background()
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !time.Now().Before(deadline) {
			s.failSession(ctx, session, domain.FailureReasonTimeout)
			s.log.Warn().
				Str("session_id", session.ID).
				Dur("budget", s.pollTimeout).
				Msg("top-up session timed out")
			return
		}

		status, err := s.gateway.QueryStatus(ctx, session.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("session_id", session.ID).Msg("status query failed, will retry")
			continue
		}

		switch status {
		case ports.GatewayStatusPending:
			continue
		case ports.GatewayStatusCompleted:
			s.completeSession(ctx, session)
			return
		case ports.GatewayStatusCancelled:
			s.failWith(ctx, session, domain.SessionStatusCancelled, domain.FailureReasonUserCancelled)
			return
		default:
			s.failSession(ctx, session, domain.FailureReasonGatewayDeclined)
			return
		}
	}
}

// completeSession credits the wallet, then resolves the session. Credit
// comes first: if we crash in between, the session stays pending and the
// retry path replays the credit idempotently by session id.
func (s *PaymentSessionServiceImpl) completeSession(ctx context.Context, session *domain.PaymentSession) {
	if err := s.creditSession(ctx, session); err != nil {
		s.log.Error().Err(err).Str("session_id", session.ID).Msg("top-up credit failed")
		return
	}

	won, err := s.sessionRepo.MarkResolved(ctx, session.ID, domain.SessionStatusCompleted, nil, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Str("session_id", session.ID).Msg("failed to resolve session")
		return
	}
	if !won {
		return
	}

	s.cacheStatus(ctx, session.ID, domain.SessionStatusCompleted)
	s.publishTopup(session)
	s.log.Info().
		Str("session_id", session.ID).
		Int64("amount", session.Amount).
		Msg("top-up completed, wallet credited")
}

func (s *PaymentSessionServiceImpl) creditSession(ctx context.Context, session *domain.PaymentSession) error {
	_, err := s.ledger.Credit(ctx, ports.LedgerEntryRequest{
		ChildID:     session.ChildID,
		Amount:      session.Amount,
		Source:      domain.TransactionSourceTopup,
		ReferenceID: session.ID,
	})
	return err
}

func (s *PaymentSessionServiceImpl) failSession(ctx context.Context, session *domain.PaymentSession, reason domain.FailureReason) {
	s.failWith(ctx, session, domain.SessionStatusFailed, reason)
}

func (s *PaymentSessionServiceImpl) failWith(ctx context.Context, session *domain.PaymentSession, status domain.SessionStatus, reason domain.FailureReason) {
	won, err := s.sessionRepo.MarkResolved(ctx, session.ID, status, &reason, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Str("session_id", session.ID).Msg("failed to resolve session")
		return
	}
	if won {
		s.cacheStatus(ctx, session.ID, status)
		s.log.Info().
			Str("session_id", session.ID).
			Str("status", string(status)).
			Str("reason", string(reason)).
			Msg("top-up session resolved without credit")
	}
}

func (s *PaymentSessionServiceImpl) cacheStatus(ctx context.Context, sessionID string, status domain.SessionStatus) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, sessionID, status, statusCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to cache session status")
	}
}

func (s *PaymentSessionServiceImpl) publishTopup(session *domain.PaymentSession) {
	if s.publisher == nil {
		return
	}
	event := TopupEvent{
		SessionID: session.ID,
		ChildID:   session.ChildID.String(),
		Amount:    session.Amount,
		Timestamp: time.Now().Unix(),
	}
	if err := s.publisher.Publish(stream.TopicTopupCompleted, event); err != nil {
		s.log.Warn().Err(err).Msg("failed to publish top-up event")
	}
}
