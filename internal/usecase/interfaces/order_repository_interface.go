package interfaces

import (
	"context"
	"time"

	"tukangku/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Every mutating method applies a single conditional update guarded on the
// order's current state; when the condition fails (somebody else won the race,
// or the state moved on) the method returns a zero-value Order and a nil error,
// and the usecase decides which domain error that means.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
	ListByWorkerID(ctx context.Context, workerID string) ([]entities.Order, error)

	// ListActiveByWorkerSchedule returns the worker's orders in the given
	// statuses whose schedule matches the slot. Used for the best-effort
	// booking conflict check.
	ListActiveByWorkerSchedule(ctx context.Context, workerID string, slot time.Time, statuses []entities.OrderStatus) ([]entities.Order, error)

	// UpdateStatus moves the order from exactly `from` to `to`.
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error)

	// ForceStatus sets the status unconditionally (admin surface).
	ForceStatus(ctx context.Context, id string, to entities.OrderStatus) (entities.Order, error)

	// SetQuote records the worker's proposed price and moves
	// accepted -> quote_proposed.
	SetQuote(ctx context.Context, id string, price int64) (entities.Order, error)

	// ApplyQuoteDecision resolves quote_proposed: acceptance promotes
	// quoted_price to final_price and moves to quote_accepted, rejection moves
	// to quote_rejected.
	ApplyQuoteDecision(ctx context.Context, id string, accept bool) (entities.Order, error)

	// MarkInitialPaid settles the base payment leg: payment_status=paid,
	// worker_access=true, status=nextStatus. Guarded on payment_status <> paid
	// so a duplicated callback cannot re-apply it.
	MarkInitialPaid(ctx context.Context, id string, nextStatus entities.OrderStatus) (entities.Order, error)

	// MarkInitialFailed fails the base leg: payment_status=failed,
	// worker_access=false, status=cancelled. Same guard as MarkInitialPaid.
	MarkInitialFailed(ctx context.Context, id string) (entities.Order, error)

	// MarkFinalPaid settles the quote payment leg, guarded on
	// final_payment_status <> paid. nextStatus advances the order to
	// work_in_progress when it is still quote_accepted.
	MarkFinalPaid(ctx context.Context, id string, nextStatus entities.OrderStatus) (entities.Order, error)

	// MarkFinalFailed fails the quote leg without touching the order status.
	MarkFinalFailed(ctx context.Context, id string) (entities.Order, error)
}
