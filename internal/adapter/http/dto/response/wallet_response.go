package response

import (
	"time"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase"
)

type WithdrawalDestinationResponse struct {
	Type    string `json:"type"`
	Account string `json:"account"`
}

type WalletTransactionResponse struct {
	ID          string                         `json:"id"`
	Type        string                         `json:"type"`
	Amount      int64                          `json:"amount"`
	Description string                         `json:"description,omitempty"`
	Status      string                         `json:"status"`
	OrderID     string                         `json:"orderId,omitempty"`
	Destination *WithdrawalDestinationResponse `json:"destination,omitempty"`
	Timestamp   time.Time                      `json:"timestamp"`
}

type WalletSummaryResponse struct {
	WorkerID       string                      `json:"workerId"`
	CurrentBalance int64                       `json:"currentBalance"`
	UpdatedAt      *time.Time                  `json:"updatedAt,omitempty"`
	Transactions   []WalletTransactionResponse `json:"transactions"`
}

func FromWalletTransaction(tx entities.WalletTransaction) WalletTransactionResponse {
	resp := WalletTransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		Status:      string(tx.Status),
		OrderID:     tx.OrderID,
		Timestamp:   tx.Timestamp,
	}
	if tx.Destination != nil {
		resp.Destination = &WithdrawalDestinationResponse{Type: tx.Destination.Type, Account: tx.Destination.Account}
	}
	return resp
}

func FromWalletSummary(s usecase.WalletSummary) WalletSummaryResponse {
	txs := make([]WalletTransactionResponse, 0, len(s.Transactions))
	for _, tx := range s.Transactions {
		txs = append(txs, FromWalletTransaction(tx))
	}
	return WalletSummaryResponse{
		WorkerID:       s.Wallet.WorkerID,
		CurrentBalance: s.Wallet.CurrentBalance,
		UpdatedAt:      optionalTime(s.Wallet.UpdatedAt),
		Transactions:   txs,
	}
}
