package service

import (
	"context"
	"time"

	"family-wallet-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// Reaper periodically sweeps overdue pending purchase requests and
// reconciles timed-out payment sessions.
type Reaper struct {
	purchases ports.PurchaseService
	payments  ports.PaymentSessionService
	interval  time.Duration
	batchSize int
	log       zerolog.Logger
}

// NewReaper creates a new Reaper.
func NewReaper(
	purchases ports.PurchaseService,
	payments ports.PaymentSessionService,
	interval time.Duration,
	batchSize int,
	log zerolog.Logger,
) *Reaper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Reaper{
		purchases: purchases,
		payments:  payments,
		interval:  interval,
		batchSize: batchSize,
		log:       log.With().Str("component", "reaper").Logger(),
	}
}

// Start runs the sweep loop until the context is cancelled. It sweeps once
// immediately so a restart catches up without waiting a full interval.
func (r *Reaper) Start(ctx context.Context) {
	r.sweep(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("reaper stopped")
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reaper) sweep(ctx context.Context) {
	now := time.Now().UTC()

	expired, err := r.purchases.ExpireDue(ctx, now, r.batchSize)
	if err != nil {
		r.log.Error().Err(err).Msg("expiry sweep failed")
	} else if expired > 0 {
		r.log.Info().Int("expired", expired).Msg("expiry sweep complete")
	}

	recovered, err := r.payments.ReconcileTimedOut(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("session reconciliation failed")
	} else if recovered > 0 {
		r.log.Info().Int("recovered", recovered).Msg("session reconciliation complete")
	}
}
