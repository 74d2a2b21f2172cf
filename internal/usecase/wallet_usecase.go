package usecase

import (
	"context"
	"errors"
	"strings"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidWithdrawalAmount      = errors.New("withdrawal amount must be positive")
	ErrMissingWithdrawalDestination = errors.New("withdrawal destination is required")
	ErrInsufficientBalance          = errors.New("insufficient wallet balance")
)

// WalletSummary is a worker's balance with their ledger history, newest first.

type WalletSummary struct {
	Wallet       entities.Wallet
	Transactions []entities.WalletTransaction
}

type IWalletUseCase interface {
	GetMyWallet(ctx context.Context, workerID string) (WalletSummary, error)
	RequestWithdrawal(ctx context.Context, workerID string, amount int64, destination entities.WithdrawalDestination) (entities.WalletTransaction, error)
}

type WalletUseCase struct {
	wallets  interfaces.IWalletRepository
	notifier interfaces.INotifier
}

var _ IWalletUseCase = (*WalletUseCase)(nil)

func NewWalletUseCase(wallets interfaces.IWalletRepository, notifier interfaces.INotifier) *WalletUseCase {
	return &WalletUseCase{wallets: wallets, notifier: notifier}
}

// GetMyWallet returns the worker's balance and history. A worker who never
// earned anything has no wallet item yet; they see a zero balance, not an
// error.
func (u *WalletUseCase) GetMyWallet(ctx context.Context, workerID string) (WalletSummary, error) {
	wallet, err := u.wallets.GetByWorkerID(ctx, workerID)
	if err != nil {
		return WalletSummary{}, err
	}
	if wallet.WorkerID == "" {
		wallet = entities.Wallet{WorkerID: workerID}
	}

	transactions, err := u.wallets.ListTransactions(ctx, workerID)
	if err != nil {
		return WalletSummary{}, err
	}
	return WalletSummary{Wallet: wallet, Transactions: transactions}, nil
}

// RequestWithdrawal debits the balance and records a pending cash-out in one
// transaction. The actual transfer to the worker's bank or e-wallet account is
// settled out of band by operations.
func (u *WalletUseCase) RequestWithdrawal(ctx context.Context, workerID string, amount int64, destination entities.WithdrawalDestination) (entities.WalletTransaction, error) {
	if amount <= 0 {
		return entities.WalletTransaction{}, ErrInvalidWithdrawalAmount
	}
	if strings.TrimSpace(destination.Type) == "" || strings.TrimSpace(destination.Account) == "" {
		return entities.WalletTransaction{}, ErrMissingWithdrawalDestination
	}

	tx := entities.WalletTransaction{
		Type:        entities.WalletTransactionCashOut,
		Amount:      amount,
		Description: "Withdrawal to " + destination.Type + " " + destination.Account,
		Status:      entities.WalletTransactionPending,
		Destination: &destination,
	}

	created, err := u.wallets.Withdraw(ctx, workerID, tx)
	if err != nil {
		logrus.Errorf("[wallet][usecase] withdrawal failed worker_id=%s amount=%d err=%v", workerID, amount, err)
		return entities.WalletTransaction{}, err
	}
	if created.ID == "" {
		return entities.WalletTransaction{}, ErrInsufficientBalance
	}
	logrus.Infof("[wallet][usecase] withdrawal requested worker_id=%s amount=%d tx_id=%s", workerID, amount, created.ID)

	if u.notifier != nil {
		if err := u.notifier.Notify(ctx, workerID, "withdrawal_requested", map[string]any{"transactionId": created.ID, "amount": amount}); err != nil {
			logrus.Warnf("[wallet][usecase] notification failed worker_id=%s err=%v", workerID, err)
		}
	}
	return created, nil
}
