package entities

import "time"

// VoucherDiscountType selects how a voucher's value is applied.

type VoucherDiscountType string

const (
	VoucherDiscountPercent VoucherDiscountType = "percent"
	VoucherDiscountNominal VoucherDiscountType = "nominal"
)

// Voucher is a discount code applied at order creation.
//
// Storage model (DynamoDB):
//   - PK: code (the code doubles as the document id)

type Voucher struct {
	Code         string              `json:"code"`
	Type         string              `json:"type"` // global or user_claimed
	DiscountType VoucherDiscountType `json:"discountType"`
	Value        int64               `json:"value"`
	MaxDiscount  int64               `json:"maxDiscount,omitempty"`
	MinOrder     int64               `json:"minOrder,omitempty"`
	Status       string              `json:"status"` // active or inactive
	StartDate    time.Time           `json:"startDate,omitempty"`
	EndDate      time.Time           `json:"endDate,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// DiscountFor computes the discount a voucher grants on the given amount,
// returning 0 when the voucher does not apply.
func (v Voucher) DiscountFor(amount int64, now time.Time) int64 {
	if v.Status != "active" {
		return 0
	}
	if !v.StartDate.IsZero() && now.Before(v.StartDate) {
		return 0
	}
	if !v.EndDate.IsZero() && now.After(v.EndDate) {
		return 0
	}
	if v.MinOrder > 0 && amount < v.MinOrder {
		return 0
	}

	var discount int64
	switch v.DiscountType {
	case VoucherDiscountPercent:
		discount = amount * v.Value / 100
		if v.MaxDiscount > 0 && discount > v.MaxDiscount {
			discount = v.MaxDiscount
		}
	case VoucherDiscountNominal:
		discount = v.Value
	}
	if discount > amount {
		discount = amount
	}
	return discount
}
