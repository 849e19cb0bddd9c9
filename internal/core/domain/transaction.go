package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind is the direction of a ledger entry.
type TransactionKind string

const (
	TransactionKindCredit TransactionKind = "credit"
	TransactionKindDebit  TransactionKind = "debit"
)

// TransactionSource records what produced a ledger entry.
type TransactionSource string

const (
	TransactionSourceTopup    TransactionSource = "topup"
	TransactionSourcePurchase TransactionSource = "purchase"
	TransactionSourceRefund   TransactionSource = "refund"
)

// Transaction is an immutable, append-only ledger entry. Corrections are
// modeled as counter-transactions, never as updates. ReferenceID links the
// entry to the purchase request or payment session that caused it and is
// unique per wallet: it is the idempotency key for retried mutations.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	WalletID    uuid.UUID         `json:"wallet_id"`
	Kind        TransactionKind   `json:"kind"`
	Amount      int64             `json:"amount"`
	Source      TransactionSource `json:"source"`
	ReferenceID string            `json:"reference_id"`
	CreatedAt   time.Time         `json:"created_at"`
}
