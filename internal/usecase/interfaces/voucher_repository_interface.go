package interfaces

import (
	"context"

	"tukangku/internal/domain/entities"
)

// IVoucherRepository abstracts DynamoDB persistence for vouchers. Order
// creation only needs the lookup; discount math lives on the entity.

type IVoucherRepository interface {
	GetByCode(ctx context.Context, code string) (entities.Voucher, error)
}
