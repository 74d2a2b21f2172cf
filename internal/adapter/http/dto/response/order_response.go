package response

import (
	"time"

	"tukangku/internal/domain/entities"
)

type OrderResponse struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customerId"`
	WorkerID           string     `json:"workerId"`
	ServiceID          string     `json:"serviceId"`
	Harga              int64      `json:"harga"`
	TipeLayanan        string     `json:"tipeLayanan"`
	QuotedPrice        int64      `json:"quotedPrice,omitempty"`
	FinalPrice         int64      `json:"finalPrice,omitempty"`
	Discount           int64      `json:"discount,omitempty"`
	AppliedVoucher     string     `json:"appliedVoucher,omitempty"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus"`
	FinalPaymentStatus string     `json:"finalPaymentStatus,omitempty"`
	WorkerAccess       bool       `json:"workerAccess"`
	JadwalPerbaikan    time.Time  `json:"jadwalPerbaikan"`
	Catatan            string     `json:"catatan,omitempty"`
	HasBeenReviewed    bool       `json:"hasBeenReviewed"`
	DibuatPada         time.Time  `json:"dibuatPada"`
	PaidAt             *time.Time `json:"paidAt,omitempty"`
	FinalPaidAt        *time.Time `json:"finalPaidAt,omitempty"`
	QuoteProposedAt    *time.Time `json:"quoteProposedAt,omitempty"`
	QuoteRespondedAt   *time.Time `json:"quoteRespondedAt,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		WorkerID:           o.WorkerID,
		ServiceID:          o.ServiceID,
		Harga:              o.Harga,
		TipeLayanan:        string(o.TipeLayanan),
		QuotedPrice:        o.QuotedPrice,
		FinalPrice:         o.FinalPrice,
		Discount:           o.Discount,
		AppliedVoucher:     o.AppliedVoucher,
		Status:             string(o.Status),
		PaymentStatus:      string(o.PaymentStatus),
		FinalPaymentStatus: string(o.FinalPaymentStatus),
		WorkerAccess:       o.WorkerAccess,
		JadwalPerbaikan:    o.JadwalPerbaikan,
		Catatan:            o.Catatan,
		HasBeenReviewed:    o.HasBeenReviewed,
		DibuatPada:         o.DibuatPada,
		PaidAt:             optionalTime(o.PaidAt),
		FinalPaidAt:        optionalTime(o.FinalPaidAt),
		QuoteProposedAt:    optionalTime(o.QuoteProposedAt),
		QuoteRespondedAt:   optionalTime(o.QuoteRespondedAt),
		CompletedAt:        optionalTime(o.CompletedAt),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type MyOrdersResponse struct {
	AsCustomer []OrderResponse `json:"asCustomer"`
	AsWorker   []OrderResponse `json:"asWorker"`
}

type OrderWithPaymentResponse struct {
	Order   OrderResponse        `json:"order"`
	Payment PaymentTokenResponse `json:"payment"`
}

type AvailabilityResponse struct {
	WorkerID    string      `json:"workerId"`
	BookedSlots []time.Time `json:"bookedSlots"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
