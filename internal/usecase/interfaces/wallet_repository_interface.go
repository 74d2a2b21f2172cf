package interfaces

import (
	"context"

	"tukangku/internal/domain/entities"
)

// IWalletRepository abstracts DynamoDB persistence for the wallet ledger.
//
// CreditForOrder and Withdraw are the only writers; both run as a single
// DynamoDB transaction so the balance and its ledger record commit together
// or not at all. A failed transaction condition returns zero values and a nil
// error, mirroring IOrderRepository.

type IWalletRepository interface {
	GetByWorkerID(ctx context.Context, workerID string) (entities.Wallet, error)
	ListTransactions(ctx context.Context, workerID string) ([]entities.WalletTransaction, error)

	// CreditForOrder atomically (1) completes the order, guarded on its
	// observed status and payment_status=paid, (2) adds amount to the worker's
	// balance, creating the wallet lazily, and (3) appends a success cash-in
	// entry referencing the order. Returns the completed order, or a zero
	// Order when the completion guard failed.
	CreditForOrder(ctx context.Context, ord entities.Order, amount int64) (entities.Order, error)

	// Withdraw atomically debits the balance, guarded on
	// current_balance >= amount, and appends a pending cash-out entry.
	// Returns a zero WalletTransaction when the balance guard failed.
	Withdraw(ctx context.Context, workerID string, tx entities.WalletTransaction) (entities.WalletTransaction, error)
}
