package service

import (
	"family-wallet-service/internal/core/domain"
)

// PolicyInput is everything the approval policy needs to decide. The caller
// gathers it inside the wallet lock so the spend totals cannot drift between
// evaluation and commit.
type PolicyInput struct {
	WalletActive bool
	Amount       int64
	Settings     domain.ApprovalSettings
	// SpendToday and SpendMonth are purchase debits already committed in the
	// current UTC day and calendar month.
	SpendToday int64
	SpendMonth int64
}

// EvaluatePolicy maps a purchase attempt to a decision. It is a pure
// function: same input, same decision, no I/O.
//
// Structurally invalid attempts (inactive wallet, non-positive amount,
// unknown mode) are denied outright. Realtime mode always defers to the
// parent. Spending-limit mode auto-approves only when the amount clears
// every configured limit; exceeding a limit downgrades to review rather
// than denying, so the parent can still allow the purchase explicitly.
func EvaluatePolicy(in PolicyInput) domain.Decision {
	if !in.WalletActive || in.Amount <= 0 {
		return domain.DecisionDeny
	}

	switch in.Settings.Mode {
	case domain.ApprovalModeRealtime:
		return domain.DecisionRequireReview
	case domain.ApprovalModeSpendingLimit:
		// fall through to limit checks
	default:
		return domain.DecisionDeny
	}

	if in.Settings.PerPurchaseLimit != nil && in.Amount > *in.Settings.PerPurchaseLimit {
		return domain.DecisionRequireReview
	}
	if in.Settings.DailyLimit != nil && in.SpendToday+in.Amount > *in.Settings.DailyLimit {
		return domain.DecisionRequireReview
	}
	if in.Settings.MonthlyLimit != nil && in.SpendMonth+in.Amount > *in.Settings.MonthlyLimit {
		return domain.DecisionRequireReview
	}

	return domain.DecisionAutoApprove
}
