package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentCustomer identifies the paying customer to the gateway.

type PaymentCustomer struct {
	Name  string
	Email string
}

// PaymentToken is the hosted-payment-page handle returned by the gateway.

type PaymentToken struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// IPaymentGateway abstracts the external payment provider (Midtrans Snap).
//
// reference is the external order reference the gateway echoes back in its
// notification callbacks; the quote payment leg uses the distinguished form
// "quote_<orderId>" and that format must not change.

type IPaymentGateway interface {
	CreateTransaction(ctx context.Context, reference string, amount int64, customer PaymentCustomer) (PaymentToken, error)
	GetTransactionStatus(ctx context.Context, reference string) (json.RawMessage, error)
}
