package dto

// PurchaseCreateRequest is the request body for a child purchase attempt.
type PurchaseCreateRequest struct {
	ItemName     string `json:"item_name" binding:"required,min=1,max=200"`
	PurchaseType string `json:"purchase_type" binding:"required,oneof=app game_item content other"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
}

// PurchaseRejectRequest is the optional request body for a parent rejection.
type PurchaseRejectRequest struct {
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// SettingsUpdateRequest is the request body for updating approval settings.
// Limits are in minor currency units; omitting a limit leaves it unbounded.
type SettingsUpdateRequest struct {
	Mode             string `json:"mode" binding:"required,oneof=realtime spending_limit"`
	PerPurchaseLimit *int64 `json:"per_purchase_limit,omitempty" binding:"omitempty,gt=0"`
	DailyLimit       *int64 `json:"daily_limit,omitempty" binding:"omitempty,gt=0"`
	MonthlyLimit     *int64 `json:"monthly_limit,omitempty" binding:"omitempty,gt=0"`
}

// ManualTopupRequest is the request body for the direct-credit top-up path.
// ReferenceID is optional; clients that retry should send one so the replay
// returns the original credit instead of a second one.
type ManualTopupRequest struct {
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	ReferenceID *string `json:"reference_id,omitempty" binding:"omitempty,max=100"`
}

// TopupInitiateRequest is the request body for starting an STK push top-up.
type TopupInitiateRequest struct {
	ChildID          string `json:"child_id" binding:"required,uuid"`
	PhoneNumber      string `json:"phone_number" binding:"required,msisdn"`
	Amount           int64  `json:"amount" binding:"required,gt=0"`
	AccountReference string `json:"account_reference" binding:"omitempty,max=100"`
	TransactionDesc  string `json:"transaction_desc" binding:"omitempty,max=200"`
}

// WalletResponse is the response body for a wallet snapshot.
type WalletResponse struct {
	ChildID       string `json:"child_id"`
	Currency      string `json:"currency"`
	Balance       int64  `json:"balance"`
	TotalCredited int64  `json:"total_credited"`
	TotalDebited  int64  `json:"total_debited"`
	Active        bool   `json:"active"`
}

// TransactionResponse is one ledger entry in a listing.
type TransactionResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Amount      int64  `json:"amount"`
	Source      string `json:"source"`
	ReferenceID string `json:"reference_id"`
	CreatedAt   string `json:"created_at"`
}

// TransactionListResponse wraps a paginated transaction history.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// PurchaseRequestResponse is the response body for a purchase request.
type PurchaseRequestResponse struct {
	ID              string  `json:"id"`
	ChildID         string  `json:"child_id"`
	ItemName        string  `json:"item_name"`
	PurchaseType    string  `json:"purchase_type"`
	Amount          int64   `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	ExpiresAt       string  `json:"expires_at"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

// SettingsResponse is the response body for approval settings.
type SettingsResponse struct {
	ChildID          string `json:"child_id"`
	Mode             string `json:"mode"`
	PerPurchaseLimit *int64 `json:"per_purchase_limit"`
	DailyLimit       *int64 `json:"daily_limit"`
	MonthlyLimit     *int64 `json:"monthly_limit"`
	UpdatedAt        string `json:"updated_at"`
}

// SessionResponse is the response body for a payment session.
type SessionResponse struct {
	ID            string  `json:"id"`
	ChildID       string  `json:"child_id,omitempty"`
	Amount        int64   `json:"amount,omitempty"`
	Status        string  `json:"status"`
	FailureReason *string `json:"failure_reason,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	ResolvedAt    *string `json:"resolved_at,omitempty"`
}
