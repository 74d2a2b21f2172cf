package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrMissingOrderReference = errors.New("notification has no order reference")

// SettlementResult reports what a gateway callback did to the order. Applied
// is false when the callback was a replay or an ack-only status; the handler
// answers 200 either way so the gateway stops retrying.

type SettlementResult struct {
	Order   entities.Order
	Message string
	Applied bool
}

// ISettlementUseCase consumes asynchronous payment-gateway callbacks and
// applies their outcome to orders exactly once.

type ISettlementUseCase interface {
	HandleNotification(ctx context.Context, reference, transactionStatus, fraudStatus string) (SettlementResult, error)
	TransactionStatus(ctx context.Context, orderID string) (json.RawMessage, error)
}

type SettlementUseCase struct {
	orders   interfaces.IOrderRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.INotifier
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier) *SettlementUseCase {
	return &SettlementUseCase{orders: orders, gateway: gateway, notifier: notifier}
}

// HandleNotification applies one gateway callback. The reference identifies
// the payment leg: a bare order id is the initial charge, a "quote_" prefix is
// the final quote charge. Replays of an already-settled leg are acknowledged
// without touching the order, and every state write re-checks the paid flag so
// two concurrent replays cannot both apply.
func (u *SettlementUseCase) HandleNotification(ctx context.Context, reference, transactionStatus, fraudStatus string) (SettlementResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return SettlementResult{}, ErrMissingOrderReference
	}

	isQuoteLeg := strings.HasPrefix(reference, QuoteReferencePrefix)
	orderID := strings.TrimPrefix(reference, QuoteReferencePrefix)

	logrus.Infof("[settlement][usecase] callback received order_id=%s quote_leg=%t status=%s fraud=%s",
		orderID, isQuoteLeg, transactionStatus, fraudStatus)

	ord, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return SettlementResult{}, err
	}
	if ord.ID == "" {
		return SettlementResult{}, ErrOrderNotFound
	}

	if isQuoteLeg && ord.FinalPaymentStatus == entities.PaymentStatusPaid {
		logrus.Infof("[settlement][usecase] replay ignored order_id=%s leg=final", orderID)
		return SettlementResult{Order: ord, Message: "final payment already processed"}, nil
	}
	if !isQuoteLeg && ord.PaymentStatus == entities.PaymentStatusPaid {
		logrus.Infof("[settlement][usecase] replay ignored order_id=%s leg=initial", orderID)
		return SettlementResult{Order: ord, Message: "payment already processed"}, nil
	}

	if fraudStatus == "challenge" {
		logrus.Warnf("[settlement][usecase] fraud challenge order_id=%s status=%s", orderID, transactionStatus)
		return SettlementResult{Order: ord, Message: "transaction challenged, awaiting manual review"}, nil
	}

	switch transactionStatus {
	case "settlement", "capture":
		return u.applySettled(ctx, ord, isQuoteLeg)
	case "cancel", "deny", "expire":
		return u.applyFailed(ctx, ord, isQuoteLeg, transactionStatus)
	case "pending":
		return SettlementResult{Order: ord, Message: "payment pending"}, nil
	default:
		logrus.Infof("[settlement][usecase] unhandled status acknowledged order_id=%s status=%s", orderID, transactionStatus)
		return SettlementResult{Order: ord, Message: fmt.Sprintf("callback status %q acknowledged", transactionStatus)}, nil
	}
}

func (u *SettlementUseCase) applySettled(ctx context.Context, ord entities.Order, isQuoteLeg bool) (SettlementResult, error) {
	if isQuoteLeg {
		next := ord.Status
		if next == entities.OrderStatusQuoteAccepted {
			next = entities.OrderStatusWorkInProgress
		}
		updated, err := u.orders.MarkFinalPaid(ctx, ord.ID, next)
		if err != nil {
			return SettlementResult{}, err
		}
		if updated.ID == "" {
			return SettlementResult{Order: ord, Message: "final payment already processed"}, nil
		}
		logrus.Infof("[settlement][usecase] final payment settled order_id=%s status=%s", updated.ID, updated.Status)

		u.notify(ctx, updated.WorkerID, "final_payment_settled", map[string]any{"orderId": updated.ID})
		return SettlementResult{Order: updated, Message: "final payment settled", Applied: true}, nil
	}

	next := ord.Status
	if next == entities.OrderStatusAwaitingPayment {
		next = entities.OrderStatusPending
	}
	updated, err := u.orders.MarkInitialPaid(ctx, ord.ID, next)
	if err != nil {
		return SettlementResult{}, err
	}
	if updated.ID == "" {
		return SettlementResult{Order: ord, Message: "payment already processed"}, nil
	}
	logrus.Infof("[settlement][usecase] initial payment settled order_id=%s status=%s", updated.ID, updated.Status)

	u.notify(ctx, updated.WorkerID, "order_paid", map[string]any{"orderId": updated.ID})
	return SettlementResult{Order: updated, Message: "payment settled", Applied: true}, nil
}

func (u *SettlementUseCase) applyFailed(ctx context.Context, ord entities.Order, isQuoteLeg bool, status string) (SettlementResult, error) {
	if isQuoteLeg {
		updated, err := u.orders.MarkFinalFailed(ctx, ord.ID)
		if err != nil {
			return SettlementResult{}, err
		}
		if updated.ID == "" {
			return SettlementResult{Order: ord, Message: "final payment already processed"}, nil
		}
		logrus.Infof("[settlement][usecase] final payment failed order_id=%s gateway_status=%s", updated.ID, status)

		u.notify(ctx, updated.CustomerID, "final_payment_failed", map[string]any{"orderId": updated.ID})
		return SettlementResult{Order: updated, Message: "final payment failed", Applied: true}, nil
	}

	updated, err := u.orders.MarkInitialFailed(ctx, ord.ID)
	if err != nil {
		return SettlementResult{}, err
	}
	if updated.ID == "" {
		return SettlementResult{Order: ord, Message: "payment already processed"}, nil
	}
	logrus.Infof("[settlement][usecase] initial payment failed order_id=%s gateway_status=%s", updated.ID, status)

	u.notify(ctx, updated.CustomerID, "payment_failed", map[string]any{"orderId": updated.ID})
	return SettlementResult{Order: updated, Message: "payment failed, order cancelled", Applied: true}, nil
}

// TransactionStatus proxies the gateway's view of the initial charge, for
// clients polling while the callback is in flight.
func (u *SettlementUseCase) TransactionStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	ord, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord.ID == "" {
		return nil, ErrOrderNotFound
	}
	return u.gateway.GetTransactionStatus(ctx, orderID)
}

func (u *SettlementUseCase) notify(ctx context.Context, userID, template string, payload map[string]any) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, userID, template, payload); err != nil {
		logrus.Warnf("[settlement][usecase] notification failed user_id=%s template=%s err=%v", userID, template, err)
	}
}
