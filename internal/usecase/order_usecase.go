package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// QuoteReferencePrefix marks the external reference of the final (quote)
// payment leg. The settlement handler routes callbacks by this prefix, so the
// format "quote_<orderId>" is a wire contract and must not change.
const QuoteReferencePrefix = "quote_"

// DefaultSurveyFee is the flat up-front charge for survey services (rupiah).
const DefaultSurveyFee int64 = 15000

// workerSharePercent is the worker's cut of the settled job price; the
// remainder is platform commission.
const workerSharePercent = 80

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceNotBookable   = errors.New("service not available for booking")
	ErrInvalidServicePrice  = errors.New("invalid price for fixed service")
	ErrUnknownServiceType   = errors.New("unknown service type")
	ErrInvalidSchedule      = errors.New("schedule date is required")
	ErrScheduleConflict     = errors.New("schedule slot already booked")
	ErrInvalidVoucher       = errors.New("voucher not applicable")
	ErrNotOrderWorker       = errors.New("actor is not the order's worker")
	ErrNotOrderCustomer     = errors.New("actor is not the order's customer")
	ErrNotOrderParticipant  = errors.New("actor is not part of the order")
	ErrOrderStateConflict   = errors.New("order state does not allow this action")
	ErrPaymentRequired      = errors.New("payment not confirmed for this order")
	ErrQuoteNotAllowed      = errors.New("quotes are only for survey services")
	ErrInvalidQuotePrice    = errors.New("invalid quote price")
	ErrInvalidQuoteDecision = errors.New("decision must be accept or reject")
	ErrNoFinalPrice         = errors.New("order has no final price to pay")
	ErrFinalAlreadyPaid     = errors.New("final quote already paid")
	ErrInvalidOrderStatus   = errors.New("unknown order status")
)

// Actor is the authenticated user performing an operation, as carried by the
// access token.

type Actor struct {
	ID    string
	Role  string
	Email string
	Nama  string
}

// CreateOrderInput is the domain command for booking a service.

type CreateOrderInput struct {
	ServiceID       string
	JadwalPerbaikan time.Time
	Catatan         string
	VoucherCode     string
}

// MyOrders groups a user's orders by the side they play in them.

type MyOrders struct {
	AsCustomer []entities.Order
	AsWorker   []entities.Order
}

// IOrderUseCase is the order state machine: it validates and applies every
// legal transition of an order's lifecycle, including the quote-negotiation
// sub-flow, and owns the wallet credit that completes a job.

type IOrderUseCase interface {
	CreateWithPayment(ctx context.Context, actor Actor, in CreateOrderInput) (entities.Order, interfaces.PaymentToken, error)
	GetByID(ctx context.Context, actorID, orderID string) (entities.Order, error)
	ListMine(ctx context.Context, userID string) (MyOrders, error)
	Accept(ctx context.Context, workerID, orderID string) (entities.Order, error)
	Reject(ctx context.Context, workerID, orderID string) (entities.Order, error)
	Cancel(ctx context.Context, customerID, orderID string) (entities.Order, error)
	Complete(ctx context.Context, workerID, orderID string) (entities.Order, error)
	ProposeQuote(ctx context.Context, workerID, orderID string, price int64) (entities.Order, error)
	RespondToQuote(ctx context.Context, customerID, orderID, decision string) (entities.Order, error)
	PayFinalQuote(ctx context.Context, actor Actor, orderID string) (entities.Order, interfaces.PaymentToken, error)
	ForceStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
	BookedSlots(ctx context.Context, workerID string) ([]time.Time, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	wallets  interfaces.IWalletRepository
	services interfaces.IServiceRepository
	vouchers interfaces.IVoucherRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.INotifier
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	wallets interfaces.IWalletRepository,
	services interfaces.IServiceRepository,
	vouchers interfaces.IVoucherRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotifier,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		wallets:  wallets,
		services: services,
		vouchers: vouchers,
		gateway:  gateway,
		notifier: notifier,
	}
}

func (u *OrderUseCase) CreateWithPayment(ctx context.Context, actor Actor, in CreateOrderInput) (entities.Order, interfaces.PaymentToken, error) {
	serviceID := strings.TrimSpace(in.ServiceID)
	if serviceID == "" {
		return entities.Order{}, interfaces.PaymentToken{}, ErrServiceNotFound
	}
	if in.JadwalPerbaikan.IsZero() {
		return entities.Order{}, interfaces.PaymentToken{}, ErrInvalidSchedule
	}
	logrus.Infof("[order][usecase] create start customer_id=%s service_id=%s", actor.ID, serviceID)

	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Order{}, interfaces.PaymentToken{}, err
	}
	if svc.ID == "" {
		return entities.Order{}, interfaces.PaymentToken{}, ErrServiceNotFound
	}
	if svc.StatusPersetujuan != entities.ApprovalStatusApproved {
		return entities.Order{}, interfaces.PaymentToken{}, ErrServiceNotBookable
	}

	var amount int64
	switch svc.TipeLayanan {
	case entities.ServiceTypeFixed:
		if svc.Harga <= 0 {
			return entities.Order{}, interfaces.PaymentToken{}, ErrInvalidServicePrice
		}
		amount = svc.Harga
	case entities.ServiceTypeSurvey:
		amount = DefaultSurveyFee
	default:
		return entities.Order{}, interfaces.PaymentToken{}, ErrUnknownServiceType
	}

	now := time.Now().UTC()

	var discount int64
	voucherCode := strings.TrimSpace(in.VoucherCode)
	if voucherCode != "" {
		v, err := u.vouchers.GetByCode(ctx, voucherCode)
		if err != nil {
			return entities.Order{}, interfaces.PaymentToken{}, err
		}
		if v.Code == "" {
			return entities.Order{}, interfaces.PaymentToken{}, ErrInvalidVoucher
		}
		discount = v.DiscountFor(amount, now)
		if discount == 0 {
			return entities.Order{}, interfaces.PaymentToken{}, ErrInvalidVoucher
		}
		amount -= discount
	}

	// Best-effort conflict check; two racing creations for the same slot can
	// both pass. Accepted trade-off, no distributed lock here.
	existing, err := u.orders.ListActiveByWorkerSchedule(ctx, svc.WorkerID, in.JadwalPerbaikan, entities.ActiveOrderStatuses)
	if err != nil {
		return entities.Order{}, interfaces.PaymentToken{}, err
	}
	if len(existing) > 0 {
		return entities.Order{}, interfaces.PaymentToken{}, ErrScheduleConflict
	}

	o := entities.Order{
		ID:              uuid.NewString(),
		CustomerID:      actor.ID,
		WorkerID:        svc.WorkerID,
		ServiceID:       svc.ID,
		Harga:           amount,
		TipeLayanan:     svc.TipeLayanan,
		Discount:        discount,
		AppliedVoucher:  voucherCode,
		Status:          entities.OrderStatusAwaitingPayment,
		PaymentStatus:   entities.PaymentStatusUnpaid,
		WorkerAccess:    false,
		JadwalPerbaikan: in.JadwalPerbaikan.UTC(),
		Catatan:         in.Catatan,
		DibuatPada:      now,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		logrus.Errorf("[order][usecase] create failed customer_id=%s err=%v", actor.ID, err)
		return entities.Order{}, interfaces.PaymentToken{}, err
	}

	token, err := u.gateway.CreateTransaction(ctx, created.ID, amount, interfaces.PaymentCustomer{Name: actor.Nama, Email: actor.Email})
	if err != nil {
		logrus.Errorf("[order][usecase] payment token failed order_id=%s err=%v", created.ID, err)
		return entities.Order{}, interfaces.PaymentToken{}, err
	}
	logrus.Infof("[order][usecase] create success order_id=%s amount=%d tipe=%s", created.ID, amount, created.TipeLayanan)

	return created, token, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, actorID, orderID string) (entities.Order, error) {
	ord, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.CustomerID != actorID && ord.WorkerID != actorID {
		return entities.Order{}, ErrNotOrderParticipant
	}
	return ord, nil
}

func (u *OrderUseCase) ListMine(ctx context.Context, userID string) (MyOrders, error) {
	asCustomer, err := u.orders.ListByCustomerID(ctx, userID)
	if err != nil {
		return MyOrders{}, err
	}
	asWorker, err := u.orders.ListByWorkerID(ctx, userID)
	if err != nil {
		return MyOrders{}, err
	}
	return MyOrders{AsCustomer: asCustomer, AsWorker: asWorker}, nil
}

func (u *OrderUseCase) Accept(ctx context.Context, workerID, orderID string) (entities.Order, error) {
	ord, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.WorkerID != workerID {
		return entities.Order{}, ErrNotOrderWorker
	}
	if err := workerGate(ord); err != nil {
		return entities.Order{}, err
	}
	if ord.Status != entities.OrderStatusPending {
		return entities.Order{}, ErrOrderStateConflict
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, entities.OrderStatusPending, entities.OrderStatusAccepted)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderStateConflict
	}

	u.notify(ctx, updated.CustomerID, "order_accepted", map[string]any{"orderId": updated.ID})
	return updated, nil
}

func (u *OrderUseCase) Reject(ctx context.Context, workerID, orderID string) (entities.Order, error) {
	ord, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.WorkerID != workerID {
		return entities.Order{}, ErrNotOrderWorker
	}
	if ord.Status != entities.OrderStatusPending {
		return entities.Order{}, ErrOrderStateConflict
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, entities.OrderStatusPending, entities.OrderStatusRejected)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderStateConflict
	}

	u.notify(ctx, updated.CustomerID, "order_rejected", map[string]any{"orderId": updated.ID})
	return updated, nil
}

func (u *OrderUseCase) Cancel(ctx context.Context, customerID, orderID string) (entities.Order, error) {
	ord, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.CustomerID != customerID {
		return entities.Order{}, ErrNotOrderCustomer
	}
	if ord.Status != entities.OrderStatusPending && ord.Status != entities.OrderStatusAccepted {
		return entities.Order{}, ErrOrderStateConflict
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, ord.Status, entities.OrderStatusCancelled)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderStateConflict
	}

	u.notify(ctx, updated.WorkerID, "order_cancelled", map[string]any{"orderId": updated.ID})
	return updated, nil
}

// Complete marks the job done and pays the worker in the same transaction.
// Fixed-price orders complete from accepted (they never enter the quote flow),
// survey orders from work_in_progress.
func (u *OrderUseCase) Complete(ctx context.Context, workerID, orderID string) (entities.Order, error) {
	ord, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.WorkerID != workerID {
		return entities.Order{}, ErrNotOrderWorker
	}
	if err := workerGate(ord); err != nil {
		return entities.Order{}, err
	}
	if ord.Status != entities.OrderStatusAccepted && ord.Status != entities.OrderStatusWorkInProgress {
		return entities.Order{}, ErrOrderStateConflict
	}

	amount := ord.PayableAmount() * workerSharePercent / 100
	logrus.Infof("[order][usecase] complete start order_id=%s worker_id=%s payout=%d", orderID, workerID, amount)

	completed, err := u.wallets.CreditForOrder(ctx, ord, amount)
	if err != nil {
		logrus.Errorf("[order][usecase] complete failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	if completed.ID == "" {
		// Lost the race against a concurrent complete (or a settlement-side
		// status change); no credit was applied.
		return entities.Order{}, ErrOrderStateConflict
	}
	logrus.Infof("[order][usecase] complete success order_id=%s payout=%d", orderID, amount)

	u.notify(ctx, completed.CustomerID, "order_completed", map[string]any{"orderId": completed.ID})
	return completed, nil
}

func (u *OrderUseCase) ProposeQuote(ctx context.Context, workerID, orderID string, price int64) (entities.Order, error) {
	if price <= 0 {
		return entities.Order{}, ErrInvalidQuotePrice
	}

	ord, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.WorkerID != workerID {
		return entities.Order{}, ErrNotOrderWorker
	}
	if err := workerGate(ord); err != nil {
		return entities.Order{}, err
	}
	if ord.TipeLayanan != entities.ServiceTypeSurvey {
		return entities.Order{}, ErrQuoteNotAllowed
	}
	if ord.Status != entities.OrderStatusAccepted {
		return entities.Order{}, ErrOrderStateConflict
	}

	updated, err := u.orders.SetQuote(ctx, orderID, price)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderStateConflict
	}

	u.notify(ctx, updated.CustomerID, "quote_proposed", map[string]any{"orderId": updated.ID, "quotedPrice": price})
	return updated, nil
}

func (u *OrderUseCase) RespondToQuote(ctx context.Context, customerID, orderID, decision string) (entities.Order, error) {
	if decision != "accept" && decision != "reject" {
		return entities.Order{}, ErrInvalidQuoteDecision
	}

	ord, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.CustomerID != customerID {
		return entities.Order{}, ErrNotOrderCustomer
	}
	if ord.Status != entities.OrderStatusQuoteProposed {
		return entities.Order{}, ErrOrderStateConflict
	}

	updated, err := u.orders.ApplyQuoteDecision(ctx, orderID, decision == "accept")
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderStateConflict
	}

	u.notify(ctx, updated.WorkerID, "quote_"+decision+"ed", map[string]any{"orderId": updated.ID})
	return updated, nil
}

// PayFinalQuote issues a payment token for the second leg of a survey order.
// The reference carries the quote prefix so the settlement handler can tell
// the legs apart.
func (u *OrderUseCase) PayFinalQuote(ctx context.Context, actor Actor, orderID string) (entities.Order, interfaces.PaymentToken, error) {
	ord, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, interfaces.PaymentToken{}, err
	}
	if ord.CustomerID != actor.ID {
		return entities.Order{}, interfaces.PaymentToken{}, ErrNotOrderCustomer
	}
	if ord.Status != entities.OrderStatusQuoteAccepted {
		return entities.Order{}, interfaces.PaymentToken{}, ErrOrderStateConflict
	}
	if ord.FinalPrice <= 0 {
		return entities.Order{}, interfaces.PaymentToken{}, ErrNoFinalPrice
	}
	if ord.FinalPaymentStatus == entities.PaymentStatusPaid {
		return entities.Order{}, interfaces.PaymentToken{}, ErrFinalAlreadyPaid
	}

	reference := QuoteReferencePrefix + ord.ID
	token, err := u.gateway.CreateTransaction(ctx, reference, ord.FinalPrice, interfaces.PaymentCustomer{Name: actor.Nama, Email: actor.Email})
	if err != nil {
		logrus.Errorf("[order][usecase] final payment token failed order_id=%s err=%v", ord.ID, err)
		return entities.Order{}, interfaces.PaymentToken{}, err
	}
	logrus.Infof("[order][usecase] final payment token issued order_id=%s reference=%s amount=%d", ord.ID, reference, ord.FinalPrice)

	return ord, token, nil
}

func (u *OrderUseCase) ForceStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.orders.ForceStatus(ctx, orderID, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) BookedSlots(ctx context.Context, workerID string) ([]time.Time, error) {
	orders, err := u.orders.ListByWorkerID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	slots := make([]time.Time, 0, len(orders))
	for _, o := range orders {
		for _, s := range entities.ActiveOrderStatuses {
			if o.Status == s {
				slots = append(slots, o.JadwalPerbaikan)
				break
			}
		}
	}
	return slots, nil
}

func (u *OrderUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	ord, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return ord, nil
}

// workerGate enforces the payment gate on worker actions: nothing moves until
// the initial payment settled and unlocked worker access.
func workerGate(ord entities.Order) error {
	if ord.PaymentStatus != entities.PaymentStatusPaid || !ord.WorkerAccess {
		return ErrPaymentRequired
	}
	return nil
}

func (u *OrderUseCase) notify(ctx context.Context, userID, template string, payload map[string]any) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, userID, template, payload); err != nil {
		logrus.Warnf("[order][usecase] notification failed user_id=%s template=%s err=%v", userID, template, err)
	}
}
