package entities

import "time"

// OrderStatus is the closed set of order lifecycle states.
//
// Fixed-price flow:   awaiting_payment -> pending -> accepted -> completed
// Survey flow:        awaiting_payment -> pending -> accepted -> quote_proposed
//                     -> quote_accepted -> work_in_progress -> completed
// Side branches: cancelled (customer), rejected (worker), quote_rejected (customer).

type OrderStatus string

const (
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusAccepted        OrderStatus = "accepted"
	OrderStatusQuoteProposed   OrderStatus = "quote_proposed"
	OrderStatusQuoteAccepted   OrderStatus = "quote_accepted"
	OrderStatusQuoteRejected   OrderStatus = "quote_rejected"
	OrderStatusWorkInProgress  OrderStatus = "work_in_progress"
	OrderStatusCompleted       OrderStatus = "completed"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusRejected        OrderStatus = "rejected"
)

// ActiveOrderStatuses are the states that block a worker's schedule slot.
var ActiveOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusWorkInProgress,
	OrderStatusQuoteProposed,
}

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusRejected, OrderStatusQuoteRejected:
		return true
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusAwaitingPayment, OrderStatusPending, OrderStatusAccepted,
		OrderStatusQuoteProposed, OrderStatusQuoteAccepted, OrderStatusQuoteRejected,
		OrderStatusWorkInProgress, OrderStatusCompleted, OrderStatusCancelled,
		OrderStatusRejected:
		return true
	}
	return false
}

// PaymentStatus tracks one payment leg of an order.

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

// Order is one transaction between a customer and a worker for a service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (worker_id-index): worker_id
//
// The order document is mutated only through conditional updates keyed on the
// current status (state machine) or the payment-status fields (settlement), so
// a lost race always surfaces as a failed condition, never as a partial write.
//
// Monetary values are rupiah, no cents.

type Order struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	WorkerID   string `json:"workerId"`
	ServiceID  string `json:"serviceId"`

	// Harga is the amount charged up front: the service price for fixed
	// services, the flat survey fee for survey services.
	Harga          int64       `json:"harga"`
	TipeLayanan    ServiceType `json:"tipeLayanan"`
	QuotedPrice    int64       `json:"quotedPrice,omitempty"`
	FinalPrice     int64       `json:"finalPrice,omitempty"`
	Discount       int64       `json:"discount,omitempty"`
	AppliedVoucher string      `json:"appliedVoucher,omitempty"`

	Status             OrderStatus   `json:"status"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	FinalPaymentStatus PaymentStatus `json:"finalPaymentStatus,omitempty"`

	// WorkerAccess gates every worker action until the initial payment settles.
	WorkerAccess bool `json:"workerAccess"`

	JadwalPerbaikan time.Time `json:"jadwalPerbaikan"`
	Catatan         string    `json:"catatan,omitempty"`
	HasBeenReviewed bool      `json:"hasBeenReviewed"`

	DibuatPada       time.Time `json:"dibuatPada"`
	PaidAt           time.Time `json:"paidAt,omitempty"`
	FinalPaidAt      time.Time `json:"finalPaidAt,omitempty"`
	QuoteProposedAt  time.Time `json:"quoteProposedAt,omitempty"`
	QuoteRespondedAt time.Time `json:"quoteRespondedAt,omitempty"`
	CompletedAt      time.Time `json:"completedAt,omitempty"`
}

// PayableAmount is the amount the completed job settles at: the agreed final
// price when a quote flow ran, the up-front charge otherwise.
func (o Order) PayableAmount() int64 {
	if o.FinalPrice > 0 {
		return o.FinalPrice
	}
	return o.Harga
}
