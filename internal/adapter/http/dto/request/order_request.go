package request

import "time"

// CreateOrderRequest books a service for the authenticated customer.
type CreateOrderRequest struct {
	ServiceID       string    `json:"serviceId" binding:"required"`
	JadwalPerbaikan time.Time `json:"jadwalPerbaikan" binding:"required"`
	Catatan         string    `json:"catatan"`
	VoucherCode     string    `json:"voucherCode"`
}

// ProposeQuoteRequest carries the worker's post-survey price.
type ProposeQuoteRequest struct {
	QuotedPrice int64 `json:"quotedPrice" binding:"required,gt=0"`
}

// QuoteDecisionRequest is the customer's answer to a proposed quote.
type QuoteDecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept reject"`
}

// ForceStatusRequest sets an order status directly (admin only).
type ForceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
