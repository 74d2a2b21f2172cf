package entities

import "time"

// Wallet holds a worker's running balance.
//
// Storage model (DynamoDB):
//   - PK: worker_id
//
// The balance is credited only by the order-completion transaction and debited
// only by a withdrawal request; both run as DynamoDB transactions together with
// their WalletTransaction record, so the accounting identity
//
//	current_balance == sum(confirmed cash-in) - sum(confirmed cash-out)
//
// holds under concurrent and duplicated attempts. The wallet item is created
// lazily by the first credit (ADD on a missing item initializes the attribute).

type Wallet struct {
	WorkerID       string    `json:"workerId"`
	CurrentBalance int64     `json:"currentBalance"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// WalletTransactionType distinguishes credits from debits.

type WalletTransactionType string

const (
	WalletTransactionCashIn  WalletTransactionType = "cash-in"
	WalletTransactionCashOut WalletTransactionType = "cash-out"
)

// WalletTransactionStatus is the settlement state of a ledger entry.
// Cash-in entries are written as success (the money is already settled by the
// gateway); cash-out entries start pending until an admin approves the payout.

type WalletTransactionStatus string

const (
	WalletTransactionPending WalletTransactionStatus = "pending"
	WalletTransactionSuccess WalletTransactionStatus = "success"
	WalletTransactionFailed  WalletTransactionStatus = "failed"
)

// WithdrawalDestination is the payout target of a cash-out request.

type WithdrawalDestination struct {
	Type    string `json:"type"`
	Account string `json:"account"`
}

// WalletTransaction is an append-only ledger entry under a wallet.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (worker_id-index): worker_id

type WalletTransaction struct {
	ID          string                  `json:"id"`
	WorkerID    string                  `json:"workerId"`
	Type        WalletTransactionType   `json:"type"`
	Amount      int64                   `json:"amount"`
	Description string                  `json:"description"`
	Status      WalletTransactionStatus `json:"status"`
	OrderID     string                  `json:"orderId,omitempty"`
	Destination *WithdrawalDestination  `json:"destination,omitempty"`
	Timestamp   time.Time               `json:"timestamp"`
}
