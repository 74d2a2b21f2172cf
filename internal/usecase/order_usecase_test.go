package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase/interfaces"
	mock_interfaces "tukangku/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderUseCaseMocks struct {
	orders   *mock_interfaces.MockIOrderRepository
	wallets  *mock_interfaces.MockIWalletRepository
	services *mock_interfaces.MockIServiceRepository
	vouchers *mock_interfaces.MockIVoucherRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newOrderUseCaseForTest(t *testing.T) (*OrderUseCase, orderUseCaseMocks) {
	ctrl := gomock.NewController(t)
	m := orderUseCaseMocks{
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		wallets:  mock_interfaces.NewMockIWalletRepository(ctrl),
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
		vouchers: mock_interfaces.NewMockIVoucherRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewOrderUseCase(m.orders, m.wallets, m.services, m.vouchers, m.gateway, nil)
	return uc, m
}

func approvedFixedService() entities.Service {
	return entities.Service{
		ID:                "svc-1",
		WorkerID:          "worker-1",
		NamaLayanan:       "Servis AC",
		Harga:             100000,
		TipeLayanan:       entities.ServiceTypeFixed,
		StatusPersetujuan: entities.ApprovalStatusApproved,
	}
}

func approvedSurveyService() entities.Service {
	svc := approvedFixedService()
	svc.ID = "svc-2"
	svc.TipeLayanan = entities.ServiceTypeSurvey
	svc.Harga = 0
	return svc
}

func TestOrderUseCase_CreateWithPayment(t *testing.T) {
	actor := Actor{ID: "cust-1", Role: "CUSTOMER", Email: "cust@test.com", Nama: "Budi"}
	slot := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("service not found", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Service{}, nil)

		_, _, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "missing", JadwalPerbaikan: slot})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("service not approved", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		svc := approvedFixedService()
		svc.StatusPersetujuan = entities.ApprovalStatusPending
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)

		_, _, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "svc-1", JadwalPerbaikan: slot})
		if !errors.Is(err, ErrServiceNotBookable) {
			t.Fatalf("expected ErrServiceNotBookable, got %v", err)
		}
	})

	t.Run("fixed service without a valid price", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		svc := approvedFixedService()
		svc.Harga = 0
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)

		_, _, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "svc-1", JadwalPerbaikan: slot})
		if !errors.Is(err, ErrInvalidServicePrice) {
			t.Fatalf("expected ErrInvalidServicePrice, got %v", err)
		}
	})

	t.Run("missing schedule", func(t *testing.T) {
		uc, _ := newOrderUseCaseForTest(t)

		_, _, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "svc-1"})
		if !errors.Is(err, ErrInvalidSchedule) {
			t.Fatalf("expected ErrInvalidSchedule, got %v", err)
		}
	})

	t.Run("schedule conflict", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(approvedFixedService(), nil)
		m.orders.EXPECT().ListActiveByWorkerSchedule(gomock.Any(), "worker-1", slot, entities.ActiveOrderStatuses).
			Return([]entities.Order{{ID: "other"}}, nil)

		_, _, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "svc-1", JadwalPerbaikan: slot})
		if !errors.Is(err, ErrScheduleConflict) {
			t.Fatalf("expected ErrScheduleConflict, got %v", err)
		}
	})

	t.Run("unknown voucher", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(approvedFixedService(), nil)
		m.vouchers.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.Voucher{}, nil)

		_, _, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "svc-1", JadwalPerbaikan: slot, VoucherCode: "NOPE"})
		if !errors.Is(err, ErrInvalidVoucher) {
			t.Fatalf("expected ErrInvalidVoucher, got %v", err)
		}
	})

	t.Run("fixed service charges the service price", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(approvedFixedService(), nil)
		m.orders.EXPECT().ListActiveByWorkerSchedule(gomock.Any(), "worker-1", slot, entities.ActiveOrderStatuses).Return(nil, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusAwaitingPayment {
					t.Fatalf("expected awaiting_payment, got %s", o.Status)
				}
				if o.PaymentStatus != entities.PaymentStatusUnpaid || o.WorkerAccess {
					t.Fatalf("new order must be unpaid with worker access off")
				}
				if o.Harga != 100000 {
					t.Fatalf("expected amount 100000, got %d", o.Harga)
				}
				return o, nil
			})
		m.gateway.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), int64(100000), interfaces.PaymentCustomer{Name: "Budi", Email: "cust@test.com"}).
			Return(interfaces.PaymentToken{Token: "tok-1"}, nil)

		ord, token, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "svc-1", JadwalPerbaikan: slot})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token.Token != "tok-1" {
			t.Fatalf("expected payment token, got %+v", token)
		}
		if ord.WorkerID != "worker-1" || ord.CustomerID != "cust-1" {
			t.Fatalf("unexpected parties: %+v", ord)
		}
	})

	t.Run("survey service charges the flat survey fee", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-2").Return(approvedSurveyService(), nil)
		m.orders.EXPECT().ListActiveByWorkerSchedule(gomock.Any(), "worker-1", slot, entities.ActiveOrderStatuses).Return(nil, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		m.gateway.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), DefaultSurveyFee, gomock.Any()).
			Return(interfaces.PaymentToken{Token: "tok-2"}, nil)

		ord, _, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "svc-2", JadwalPerbaikan: slot})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ord.Harga != DefaultSurveyFee {
			t.Fatalf("expected survey fee %d, got %d", DefaultSurveyFee, ord.Harga)
		}
	})

	t.Run("voucher discount reduces the charge", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(approvedFixedService(), nil)
		m.vouchers.EXPECT().GetByCode(gomock.Any(), "HEMAT10").Return(entities.Voucher{
			Code:         "HEMAT10",
			DiscountType: entities.VoucherDiscountPercent,
			Value:        10,
			Status:       "active",
		}, nil)
		m.orders.EXPECT().ListActiveByWorkerSchedule(gomock.Any(), "worker-1", slot, entities.ActiveOrderStatuses).Return(nil, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		m.gateway.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), int64(90000), gomock.Any()).
			Return(interfaces.PaymentToken{Token: "tok-3"}, nil)

		ord, _, err := uc.CreateWithPayment(context.Background(), actor, CreateOrderInput{ServiceID: "svc-1", JadwalPerbaikan: slot, VoucherCode: "HEMAT10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ord.Harga != 90000 || ord.Discount != 10000 || ord.AppliedVoucher != "HEMAT10" {
			t.Fatalf("unexpected voucher math: %+v", ord)
		}
	})
}

func TestOrderUseCase_WorkerActionsGatedByPayment(t *testing.T) {
	unpaid := entities.Order{
		ID:            "ord-1",
		CustomerID:    "cust-1",
		WorkerID:      "worker-1",
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
	}

	t.Run("accept before payment settles", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(unpaid, nil)

		_, err := uc.Accept(context.Background(), "worker-1", "ord-1")
		if !errors.Is(err, ErrPaymentRequired) {
			t.Fatalf("expected ErrPaymentRequired, got %v", err)
		}
	})

	t.Run("complete before payment settles", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(unpaid, nil)

		_, err := uc.Complete(context.Background(), "worker-1", "ord-1")
		if !errors.Is(err, ErrPaymentRequired) {
			t.Fatalf("expected ErrPaymentRequired, got %v", err)
		}
	})

	t.Run("propose quote before payment settles", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		survey := unpaid
		survey.TipeLayanan = entities.ServiceTypeSurvey
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(survey, nil)

		_, err := uc.ProposeQuote(context.Background(), "worker-1", "ord-1", 250000)
		if !errors.Is(err, ErrPaymentRequired) {
			t.Fatalf("expected ErrPaymentRequired, got %v", err)
		}
	})
}

func TestOrderUseCase_Accept(t *testing.T) {
	paid := entities.Order{
		ID:            "ord-1",
		CustomerID:    "cust-1",
		WorkerID:      "worker-1",
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusPaid,
		WorkerAccess:  true,
	}

	t.Run("only the assigned worker", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(paid, nil)

		_, err := uc.Accept(context.Background(), "worker-2", "ord-1")
		if !errors.Is(err, ErrNotOrderWorker) {
			t.Fatalf("expected ErrNotOrderWorker, got %v", err)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		done := paid
		done.Status = entities.OrderStatusCompleted
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(done, nil)

		_, err := uc.Accept(context.Background(), "worker-1", "ord-1")
		if !errors.Is(err, ErrOrderStateConflict) {
			t.Fatalf("expected ErrOrderStateConflict, got %v", err)
		}
	})

	t.Run("lost race surfaces as conflict", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(paid, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusPending, entities.OrderStatusAccepted).
			Return(entities.Order{}, nil)

		_, err := uc.Accept(context.Background(), "worker-1", "ord-1")
		if !errors.Is(err, ErrOrderStateConflict) {
			t.Fatalf("expected ErrOrderStateConflict, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		accepted := paid
		accepted.Status = entities.OrderStatusAccepted
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(paid, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusPending, entities.OrderStatusAccepted).
			Return(accepted, nil)

		ord, err := uc.Accept(context.Background(), "worker-1", "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ord.Status != entities.OrderStatusAccepted {
			t.Fatalf("expected accepted, got %s", ord.Status)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	base := entities.Order{
		ID:         "ord-1",
		CustomerID: "cust-1",
		WorkerID:   "worker-1",
		Status:     entities.OrderStatusPending,
	}

	t.Run("only the customer", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(base, nil)

		_, err := uc.Cancel(context.Background(), "worker-1", "ord-1")
		if !errors.Is(err, ErrNotOrderCustomer) {
			t.Fatalf("expected ErrNotOrderCustomer, got %v", err)
		}
	})

	t.Run("not cancellable after work started", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		wip := base
		wip.Status = entities.OrderStatusWorkInProgress
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(wip, nil)

		_, err := uc.Cancel(context.Background(), "cust-1", "ord-1")
		if !errors.Is(err, ErrOrderStateConflict) {
			t.Fatalf("expected ErrOrderStateConflict, got %v", err)
		}
	})

	t.Run("success from accepted", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		accepted := base
		accepted.Status = entities.OrderStatusAccepted
		cancelled := accepted
		cancelled.Status = entities.OrderStatusCancelled
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(accepted, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusAccepted, entities.OrderStatusCancelled).
			Return(cancelled, nil)

		ord, err := uc.Cancel(context.Background(), "cust-1", "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ord.Status != entities.OrderStatusCancelled {
			t.Fatalf("expected cancelled, got %s", ord.Status)
		}
	})
}

func TestOrderUseCase_Complete(t *testing.T) {
	paidAccepted := entities.Order{
		ID:            "ord-1",
		CustomerID:    "cust-1",
		WorkerID:      "worker-1",
		Harga:         100000,
		TipeLayanan:   entities.ServiceTypeFixed,
		Status:        entities.OrderStatusAccepted,
		PaymentStatus: entities.PaymentStatusPaid,
		WorkerAccess:  true,
	}

	t.Run("credits eighty percent of the fixed price", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(paidAccepted, nil)
		completed := paidAccepted
		completed.Status = entities.OrderStatusCompleted
		m.wallets.EXPECT().CreditForOrder(gomock.Any(), paidAccepted, int64(80000)).Return(completed, nil)

		ord, err := uc.Complete(context.Background(), "worker-1", "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ord.Status != entities.OrderStatusCompleted {
			t.Fatalf("expected completed, got %s", ord.Status)
		}
	})

	t.Run("payout uses the final price when a quote was agreed", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		survey := paidAccepted
		survey.TipeLayanan = entities.ServiceTypeSurvey
		survey.Status = entities.OrderStatusWorkInProgress
		survey.FinalPrice = 500000
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(survey, nil)
		completed := survey
		completed.Status = entities.OrderStatusCompleted
		m.wallets.EXPECT().CreditForOrder(gomock.Any(), survey, int64(400000)).Return(completed, nil)

		if _, err := uc.Complete(context.Background(), "worker-1", "ord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("double complete loses the transaction race", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(paidAccepted, nil)
		m.wallets.EXPECT().CreditForOrder(gomock.Any(), paidAccepted, int64(80000)).Return(entities.Order{}, nil)

		_, err := uc.Complete(context.Background(), "worker-1", "ord-1")
		if !errors.Is(err, ErrOrderStateConflict) {
			t.Fatalf("expected ErrOrderStateConflict, got %v", err)
		}
	})

	t.Run("not completable from pending", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		pending := paidAccepted
		pending.Status = entities.OrderStatusPending
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pending, nil)

		_, err := uc.Complete(context.Background(), "worker-1", "ord-1")
		if !errors.Is(err, ErrOrderStateConflict) {
			t.Fatalf("expected ErrOrderStateConflict, got %v", err)
		}
	})
}

func TestOrderUseCase_QuoteFlow(t *testing.T) {
	surveyAccepted := entities.Order{
		ID:            "ord-1",
		CustomerID:    "cust-1",
		WorkerID:      "worker-1",
		Harga:         DefaultSurveyFee,
		TipeLayanan:   entities.ServiceTypeSurvey,
		Status:        entities.OrderStatusAccepted,
		PaymentStatus: entities.PaymentStatusPaid,
		WorkerAccess:  true,
	}

	t.Run("quotes are not for fixed services", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		fixed := surveyAccepted
		fixed.TipeLayanan = entities.ServiceTypeFixed
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(fixed, nil)

		_, err := uc.ProposeQuote(context.Background(), "worker-1", "ord-1", 250000)
		if !errors.Is(err, ErrQuoteNotAllowed) {
			t.Fatalf("expected ErrQuoteNotAllowed, got %v", err)
		}
	})

	t.Run("propose moves accepted to quote_proposed", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		proposed := surveyAccepted
		proposed.Status = entities.OrderStatusQuoteProposed
		proposed.QuotedPrice = 250000
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(surveyAccepted, nil)
		m.orders.EXPECT().SetQuote(gomock.Any(), "ord-1", int64(250000)).Return(proposed, nil)

		ord, err := uc.ProposeQuote(context.Background(), "worker-1", "ord-1", 250000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ord.Status != entities.OrderStatusQuoteProposed || ord.QuotedPrice != 250000 {
			t.Fatalf("unexpected quote state: %+v", ord)
		}
	})

	t.Run("acceptance promotes the quote to final price", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		proposed := surveyAccepted
		proposed.Status = entities.OrderStatusQuoteProposed
		proposed.QuotedPrice = 250000
		accepted := proposed
		accepted.Status = entities.OrderStatusQuoteAccepted
		accepted.FinalPrice = 250000
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(proposed, nil)
		m.orders.EXPECT().ApplyQuoteDecision(gomock.Any(), "ord-1", true).Return(accepted, nil)

		ord, err := uc.RespondToQuote(context.Background(), "cust-1", "ord-1", "accept")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ord.Status != entities.OrderStatusQuoteAccepted || ord.FinalPrice != 250000 {
			t.Fatalf("unexpected decision state: %+v", ord)
		}
	})

	t.Run("only accept or reject are decisions", func(t *testing.T) {
		uc, _ := newOrderUseCaseForTest(t)

		_, err := uc.RespondToQuote(context.Background(), "cust-1", "ord-1", "maybe")
		if !errors.Is(err, ErrInvalidQuoteDecision) {
			t.Fatalf("expected ErrInvalidQuoteDecision, got %v", err)
		}
	})

	t.Run("final payment reference carries the quote prefix", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		quoteAccepted := surveyAccepted
		quoteAccepted.Status = entities.OrderStatusQuoteAccepted
		quoteAccepted.FinalPrice = 250000
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(quoteAccepted, nil)
		m.gateway.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), int64(250000), gomock.Any()).DoAndReturn(
			func(_ context.Context, reference string, _ int64, _ interfaces.PaymentCustomer) (interfaces.PaymentToken, error) {
				if !strings.HasPrefix(reference, QuoteReferencePrefix) {
					t.Fatalf("expected quote_ reference, got %q", reference)
				}
				if reference != "quote_ord-1" {
					t.Fatalf("expected quote_ord-1, got %q", reference)
				}
				return interfaces.PaymentToken{Token: "tok-final"}, nil
			})

		_, token, err := uc.PayFinalQuote(context.Background(), Actor{ID: "cust-1"}, "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token.Token != "tok-final" {
			t.Fatalf("expected final token, got %+v", token)
		}
	})

	t.Run("final payment cannot be paid twice", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		alreadyPaid := surveyAccepted
		alreadyPaid.Status = entities.OrderStatusQuoteAccepted
		alreadyPaid.FinalPrice = 250000
		alreadyPaid.FinalPaymentStatus = entities.PaymentStatusPaid
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(alreadyPaid, nil)

		_, _, err := uc.PayFinalQuote(context.Background(), Actor{ID: "cust-1"}, "ord-1")
		if !errors.Is(err, ErrFinalAlreadyPaid) {
			t.Fatalf("expected ErrFinalAlreadyPaid, got %v", err)
		}
	})
}

func TestOrderUseCase_ForceStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		uc, _ := newOrderUseCaseForTest(t)

		_, err := uc.ForceStatus(context.Background(), "ord-1", entities.OrderStatus("teleported"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().ForceStatus(gomock.Any(), "ord-1", entities.OrderStatusCancelled).Return(entities.Order{}, nil)

		_, err := uc.ForceStatus(context.Background(), "ord-1", entities.OrderStatusCancelled)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_BookedSlots(t *testing.T) {
	uc, m := newOrderUseCaseForTest(t)
	slotA := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	slotB := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	m.orders.EXPECT().ListByWorkerID(gomock.Any(), "worker-1").Return([]entities.Order{
		{ID: "a", Status: entities.OrderStatusPending, JadwalPerbaikan: slotA},
		{ID: "b", Status: entities.OrderStatusCompleted, JadwalPerbaikan: slotB},
		{ID: "c", Status: entities.OrderStatusWorkInProgress, JadwalPerbaikan: slotB},
	}, nil)

	slots, err := uc.BookedSlots(context.Background(), "worker-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 booked slots, got %d", len(slots))
	}
}

func TestOrderUseCase_GetByID(t *testing.T) {
	uc, m := newOrderUseCaseForTest(t)
	ord := entities.Order{ID: "ord-1", CustomerID: "cust-1", WorkerID: "worker-1"}
	m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ord, nil).Times(2)

	if _, err := uc.GetByID(context.Background(), "cust-1", "ord-1"); err != nil {
		t.Fatalf("customer should see the order: %v", err)
	}
	if _, err := uc.GetByID(context.Background(), "stranger", "ord-1"); !errors.Is(err, ErrNotOrderParticipant) {
		t.Fatalf("expected ErrNotOrderParticipant, got %v", err)
	}
}
