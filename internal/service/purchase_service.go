package service

import (
	"context"
	"fmt"
	"time"

	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/internal/stream"
	"family-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestEvent is the payload published on purchase request transitions.
type RequestEvent struct {
	RequestID string `json:"request_id"`
	ChildID   string `json:"child_id"`
	ItemName  string `json:"item_name"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// PurchaseServiceImpl implements ports.PurchaseService.
type PurchaseServiceImpl struct {
	reqRepo      ports.PurchaseRequestRepository
	settingsRepo ports.ApprovalSettingsRepository
	walletRepo   ports.WalletRepository
	ledger       ports.WalletLedger
	transactor   ports.DBTransactor
	publisher    ports.EventPublisher // optional, may be nil
	reviewWindow time.Duration
	defaultMode  domain.ApprovalMode
	log          zerolog.Logger
}

// NewPurchaseService creates a new PurchaseServiceImpl.
func NewPurchaseService(
	reqRepo ports.PurchaseRequestRepository,
	settingsRepo ports.ApprovalSettingsRepository,
	walletRepo ports.WalletRepository,
	ledger ports.WalletLedger,
	transactor ports.DBTransactor,
	publisher ports.EventPublisher,
	reviewWindow time.Duration,
	defaultMode domain.ApprovalMode,
	log zerolog.Logger,
) *PurchaseServiceImpl {
	if reviewWindow <= 0 {
		reviewWindow = 24 * time.Hour
	}
	return &PurchaseServiceImpl{
		reqRepo:      reqRepo,
		settingsRepo: settingsRepo,
		walletRepo:   walletRepo,
		ledger:       ledger,
		transactor:   transactor,
		publisher:    publisher,
		reviewWindow: reviewWindow,
		defaultMode:  defaultMode,
		log:          log,
	}
}

var policyDeniedReason = "denied by policy"

// Create records a purchase attempt and resolves it against the child's
// approval policy. Auto-approved purchases debit the wallet in the same
// transaction that persists the request, so a crash can never leave an
// approved request without its debit or vice versa.
func (s *PurchaseServiceImpl) Create(ctx context.Context, req ports.CreatePurchaseRequest) (*domain.PurchaseRequest, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.ItemName == "" {
		return nil, apperror.Validation("item_name is required")
	}

	settings, err := s.settingsRepo.Get(ctx, req.ChildID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load approval settings: %w", err))
	}
	if settings == nil {
		settings = domain.DefaultApprovalSettings(req.ChildID, s.defaultMode)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByChildIDForUpdate(ctx, dbTx, req.ChildID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		wallet = domain.NewWallet(req.ChildID, domain.DefaultCurrency)
		if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
		}
	}

	now := time.Now().UTC()
	input := PolicyInput{
		WalletActive: wallet.Active,
		Amount:       req.Amount,
		Settings:     *settings,
	}
	// Spend windows only matter when a window limit is configured.
	if settings.Mode == domain.ApprovalModeSpendingLimit {
		if settings.DailyLimit != nil {
			dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			input.SpendToday, err = s.ledger.SpendInWindow(ctx, dbTx, wallet.ID, dayStart)
			if err != nil {
				return nil, err
			}
		}
		if settings.MonthlyLimit != nil {
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			input.SpendMonth, err = s.ledger.SpendInWindow(ctx, dbTx, wallet.ID, monthStart)
			if err != nil {
				return nil, err
			}
		}
	}

	decision := EvaluatePolicy(input)

	request := &domain.PurchaseRequest{
		ID:           uuid.New(),
		ChildID:      req.ChildID,
		WalletID:     wallet.ID,
		ItemName:     req.ItemName,
		PurchaseType: req.PurchaseType,
		Amount:       req.Amount,
		Currency:     wallet.Currency,
		Status:       domain.RequestStatusPending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.reviewWindow),
	}

	switch decision {
	case domain.DecisionDeny:
		system := domain.DecidedBySystem
		request.Status = domain.RequestStatusRejected
		request.DecidedBy = &system
		request.DecidedAt = &now
		request.RejectionReason = &policyDeniedReason

	case domain.DecisionAutoApprove:
		_, err := s.ledger.DebitInTx(ctx, dbTx, wallet, req.Amount, domain.TransactionSourcePurchase, request.ID.String())
		if err != nil {
			appErr, ok := err.(*apperror.AppError)
			if !ok || appErr.Code != apperror.CodeInsufficientFunds {
				return nil, err
			}
			// Within limits but short on funds: hold for the parent rather
			// than failing the child's attempt outright.
			s.log.Info().
				Str("request_id", request.ID.String()).
				Msg("auto-approval downgraded to review: insufficient funds")
		} else {
			system := domain.DecidedBySystem
			request.Status = domain.RequestStatusAutoApproved
			request.DecidedBy = &system
			request.DecidedAt = &now
		}

	case domain.DecisionRequireReview:
		// stays pending
	}

	if err := s.reqRepo.Create(ctx, dbTx, request); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create purchase request: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit purchase request: %w", err))
	}

	s.log.Info().
		Str("request_id", request.ID.String()).
		Str("child_id", req.ChildID.String()).
		Int64("amount", req.Amount).
		Str("status", string(request.Status)).
		Msg("purchase request created")

	if request.Status == domain.RequestStatusPending {
		s.publish(stream.TopicRequestPending, request)
	} else {
		s.publish(stream.TopicRequestDecided, request)
	}
	return request, nil
}

// Approve debits the wallet and marks the request approved, atomically. The
// request stays pending when the debit fails, so the parent can retry after
// a top-up.
func (s *PurchaseServiceImpl) Approve(ctx context.Context, requestID, parentID uuid.UUID) (*domain.PurchaseRequest, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	request, err := s.reqRepo.GetByIDForUpdate(ctx, dbTx, requestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock purchase request: %w", err))
	}
	if request == nil {
		return nil, apperror.ErrNotFound("purchase request")
	}
	if request.IsTerminal() {
		return nil, apperror.ErrAlreadyDecided()
	}

	now := time.Now().UTC()
	if request.IsExpired(now) {
		// The reaper has not swept this one yet; settle it now.
		if err := dbTx.Rollback(ctx); err != nil {
			s.log.Warn().Err(err).Msg("rollback before lazy expiry failed")
		}
		if _, err := s.reqRepo.Expire(ctx, requestID, now); err != nil {
			return nil, apperror.InternalError(err)
		}
		return nil, apperror.ErrRequestExpired()
	}

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, request.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	if _, err := s.ledger.DebitInTx(ctx, dbTx, wallet, request.Amount, domain.TransactionSourcePurchase, request.ID.String()); err != nil {
		return nil, err
	}

	won, err := s.reqRepo.MarkDecided(ctx, dbTx, requestID, domain.RequestStatusApproved, parentID.String(), nil, now)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !won {
		return nil, apperror.ErrAlreadyDecided()
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit approval: %w", err))
	}

	decidedBy := parentID.String()
	request.Status = domain.RequestStatusApproved
	request.DecidedBy = &decidedBy
	request.DecidedAt = &now

	s.log.Info().
		Str("request_id", requestID.String()).
		Str("parent_id", parentID.String()).
		Msg("purchase request approved")

	s.publish(stream.TopicRequestDecided, request)
	return request, nil
}

// Reject marks the request rejected without touching the wallet.
func (s *PurchaseServiceImpl) Reject(ctx context.Context, requestID, parentID uuid.UUID, reason *string) (*domain.PurchaseRequest, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	request, err := s.reqRepo.GetByIDForUpdate(ctx, dbTx, requestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock purchase request: %w", err))
	}
	if request == nil {
		return nil, apperror.ErrNotFound("purchase request")
	}
	if request.IsTerminal() {
		return nil, apperror.ErrAlreadyDecided()
	}

	now := time.Now().UTC()
	if request.IsExpired(now) {
		if err := dbTx.Rollback(ctx); err != nil {
			s.log.Warn().Err(err).Msg("rollback before lazy expiry failed")
		}
		if _, err := s.reqRepo.Expire(ctx, requestID, now); err != nil {
			return nil, apperror.InternalError(err)
		}
		return nil, apperror.ErrRequestExpired()
	}

	won, err := s.reqRepo.MarkDecided(ctx, dbTx, requestID, domain.RequestStatusRejected, parentID.String(), reason, now)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !won {
		return nil, apperror.ErrAlreadyDecided()
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit rejection: %w", err))
	}

	decidedBy := parentID.String()
	request.Status = domain.RequestStatusRejected
	request.DecidedBy = &decidedBy
	request.DecidedAt = &now
	request.RejectionReason = reason

	s.log.Info().
		Str("request_id", requestID.String()).
		Str("parent_id", parentID.String()).
		Msg("purchase request rejected")

	s.publish(stream.TopicRequestDecided, request)
	return request, nil
}

// List returns purchase requests matching the filter.
func (s *PurchaseServiceImpl) List(ctx context.Context, params ports.PurchaseListParams) ([]domain.PurchaseRequest, error) {
	requests, err := s.reqRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return requests, nil
}

// ExpireDue sweeps pending requests past their review window. Each row is
// expired with a guarded update, so a parent decision racing the sweep is
// never overwritten.
func (s *PurchaseServiceImpl) ExpireDue(ctx context.Context, now time.Time, limit int) (int, error) {
	due, err := s.reqRepo.ListExpirable(ctx, now, limit)
	if err != nil {
		return 0, apperror.InternalError(err)
	}

	expired := 0
	for i := range due {
		won, err := s.reqRepo.Expire(ctx, due[i].ID, now)
		if err != nil {
			s.log.Error().Err(err).
				Str("request_id", due[i].ID.String()).
				Msg("failed to expire purchase request")
			continue
		}
		if !won {
			continue
		}
		expired++

		system := domain.DecidedBySystem
		due[i].Status = domain.RequestStatusExpired
		due[i].DecidedBy = &system
		due[i].DecidedAt = &now
		s.publish(stream.TopicRequestDecided, &due[i])
	}

	if expired > 0 {
		s.log.Info().Int("count", expired).Msg("expired overdue purchase requests")
	}
	return expired, nil
}

// GetSettings returns the child's approval settings, falling back to the
// service default when none are stored.
func (s *PurchaseServiceImpl) GetSettings(ctx context.Context, childID uuid.UUID) (*domain.ApprovalSettings, error) {
	settings, err := s.settingsRepo.Get(ctx, childID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if settings == nil {
		return domain.DefaultApprovalSettings(childID, s.defaultMode), nil
	}
	return settings, nil
}

// UpdateSettings stores new approval settings. Pending requests created
// before the change keep their original outcome.
func (s *PurchaseServiceImpl) UpdateSettings(ctx context.Context, settings *domain.ApprovalSettings) error {
	if settings.Mode != domain.ApprovalModeRealtime && settings.Mode != domain.ApprovalModeSpendingLimit {
		return apperror.Validation("mode must be realtime or spending_limit")
	}
	for _, limit := range []*int64{settings.PerPurchaseLimit, settings.DailyLimit, settings.MonthlyLimit} {
		if limit != nil && *limit <= 0 {
			return apperror.Validation("limits must be positive when set")
		}
	}

	// Provision the wallet alongside the first settings write so a policy
	// always has a wallet to act on.
	if _, err := s.ledger.EnsureWallet(ctx, settings.ChildID); err != nil {
		return err
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return apperror.InternalError(err)
	}

	s.log.Info().
		Str("child_id", settings.ChildID.String()).
		Str("mode", string(settings.Mode)).
		Msg("approval settings updated")
	return nil
}

func (s *PurchaseServiceImpl) publish(topic string, request *domain.PurchaseRequest) {
	if s.publisher == nil {
		return
	}
	event := RequestEvent{
		RequestID: request.ID.String(),
		ChildID:   request.ChildID.String(),
		ItemName:  request.ItemName,
		Amount:    request.Amount,
		Status:    string(request.Status),
		Timestamp: time.Now().Unix(),
	}
	if err := s.publisher.Publish(topic, event); err != nil {
		s.log.Warn().Err(err).Str("topic", topic).Msg("failed to publish request event")
	}
}
