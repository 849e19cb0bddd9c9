package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a purchase request.
type RequestStatus string

const (
	RequestStatusPending      RequestStatus = "pending"
	RequestStatusApproved     RequestStatus = "approved"
	RequestStatusAutoApproved RequestStatus = "auto_approved"
	RequestStatusRejected     RequestStatus = "rejected"
	RequestStatusExpired      RequestStatus = "expired"
)

// DecidedBySystem marks transitions made by policy or the reaper rather
// than a parent.
const DecidedBySystem = "system"

// PurchaseRequest is a child's attempt to spend wallet funds. Terminal
// states are immutable once reached; only `pending` may transition.
type PurchaseRequest struct {
	ID              uuid.UUID     `json:"id"`
	ChildID         uuid.UUID     `json:"child_id"`
	WalletID        uuid.UUID     `json:"wallet_id"`
	ItemName        string        `json:"item_name"`
	PurchaseType    string        `json:"purchase_type"`
	Amount          int64         `json:"amount"`
	Currency        string        `json:"currency"`
	Status          RequestStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	ExpiresAt       time.Time     `json:"expires_at"`
	DecidedAt       *time.Time    `json:"decided_at,omitempty"`
	DecidedBy       *string       `json:"decided_by,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
}

// IsTerminal returns true once the request can no longer transition.
func (r *PurchaseRequest) IsTerminal() bool {
	return r.Status != RequestStatusPending
}

// IsExpired reports whether the review window has elapsed. A request past
// its deadline is never approvable, even before the reaper sweeps it.
func (r *PurchaseRequest) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
