package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the lifecycle state of a mobile-money top-up session.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusFailed    SessionStatus = "failed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// FailureReason distinguishes why a session ended in `failed` or `cancelled`.
// A timeout is our own policy decision, not a gateway signal, and only
// timed-out sessions are eligible for later reconciliation.
type FailureReason string

const (
	FailureReasonGatewayDeclined FailureReason = "gateway_declined"
	FailureReasonUserCancelled   FailureReason = "user_cancelled"
	FailureReasonTimeout         FailureReason = "timeout"
)

// PaymentSession tracks one STK push top-up from initiation to terminal
// resolution. ID is the gateway's checkout request id. A session transitions
// exactly once into a terminal state and drives at most one credit.
type PaymentSession struct {
	ID            string         `json:"id"`
	ChildID       uuid.UUID      `json:"child_id"`
	PhoneNumber   string         `json:"phone_number"`
	Amount        int64          `json:"amount"`
	Status        SessionStatus  `json:"status"`
	FailureReason *FailureReason `json:"failure_reason,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	ResolvedAt    *time.Time     `json:"resolved_at,omitempty"`
}

// IsTerminal returns true once the session has resolved.
func (s *PaymentSession) IsTerminal() bool {
	return s.Status != SessionStatusPending
}

// TimedOut reports whether the session was force-failed by the poll budget.
func (s *PaymentSession) TimedOut() bool {
	return s.Status == SessionStatusFailed &&
		s.FailureReason != nil && *s.FailureReason == FailureReasonTimeout
}
