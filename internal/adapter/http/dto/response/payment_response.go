package response

import "tukangku/internal/usecase/interfaces"

type PaymentTokenResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}

func FromPaymentToken(t interfaces.PaymentToken) PaymentTokenResponse {
	return PaymentTokenResponse{Token: t.Token, RedirectURL: t.RedirectURL}
}
