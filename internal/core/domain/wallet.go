package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is used when a wallet is auto-provisioned.
const DefaultCurrency = "KES"

// Wallet holds a child's balance in minor currency units (cents).
// Balance is derived: it must equal TotalCredited - TotalDebited at all times,
// and the ledger is the only code path allowed to mutate any of the three.
type Wallet struct {
	ID            uuid.UUID `json:"id"`
	ChildID       uuid.UUID `json:"child_id"`
	Currency      string    `json:"currency"`
	Balance       int64     `json:"balance"`
	TotalCredited int64     `json:"total_credited"`
	TotalDebited  int64     `json:"total_debited"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewWallet provisions an empty active wallet for a child.
func NewWallet(childID uuid.UUID, currency string) *Wallet {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Wallet{
		ID:        uuid.New(),
		ChildID:   childID,
		Currency:  currency,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanCover reports whether the wallet holds at least amount.
func (w *Wallet) CanCover(amount int64) bool {
	return w.Balance >= amount
}
