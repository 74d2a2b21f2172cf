package request

// WithdrawalDestinationRequest names where the money should go.
type WithdrawalDestinationRequest struct {
	Type    string `json:"type" binding:"required"`
	Account string `json:"account" binding:"required"`
}

// WithdrawalRequest asks to move balance out of the wallet.
type WithdrawalRequest struct {
	Amount      int64                        `json:"amount" binding:"required,gt=0"`
	Destination WithdrawalDestinationRequest `json:"destination" binding:"required"`
}
