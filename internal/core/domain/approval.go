package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalMode controls how a child's purchases are resolved.
type ApprovalMode string

const (
	// ApprovalModeRealtime routes every purchase to a parent decision.
	ApprovalModeRealtime ApprovalMode = "realtime"
	// ApprovalModeSpendingLimit auto-approves purchases within the limits.
	ApprovalModeSpendingLimit ApprovalMode = "spending_limit"
)

// ApprovalSettings is the parent-configured spending policy for one child.
// A nil limit means unbounded. Changes apply only to requests created after
// the change; in-flight pending requests keep their computed outcome.
type ApprovalSettings struct {
	ChildID          uuid.UUID    `json:"child_id"`
	Mode             ApprovalMode `json:"mode"`
	PerPurchaseLimit *int64       `json:"per_purchase_limit"`
	DailyLimit       *int64       `json:"daily_limit"`
	MonthlyLimit     *int64       `json:"monthly_limit"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// DefaultApprovalSettings applies to children with no stored settings.
func DefaultApprovalSettings(childID uuid.UUID, mode ApprovalMode) *ApprovalSettings {
	if mode != ApprovalModeSpendingLimit {
		mode = ApprovalModeRealtime
	}
	return &ApprovalSettings{
		ChildID:   childID,
		Mode:      mode,
		UpdatedAt: time.Now().UTC(),
	}
}

// Decision is the outcome of evaluating a purchase against the policy.
type Decision string

const (
	DecisionAutoApprove   Decision = "auto_approve"
	DecisionRequireReview Decision = "require_review"
	DecisionDeny          Decision = "deny"
)
