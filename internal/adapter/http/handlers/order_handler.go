package handlers

import (
	"context"
	"errors"
	"net/http"

	request "tukangku/internal/adapter/http/dto/request"
	response "tukangku/internal/adapter/http/dto/response"
	"tukangku/internal/adapter/http/middleware"
	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase"
	"tukangku/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for the order lifecycle, including the
// quote-negotiation sub-flow of survey orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder books a service and returns the order together with the payment
// token for the initial charge.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	actor := actorFromContext(c)
	ord, token, err := h.usecase.CreateWithPayment(c.Request.Context(), actor, usecase.CreateOrderInput{
		ServiceID:       payload.ServiceID,
		JadwalPerbaikan: payload.JadwalPerbaikan,
		Catatan:         payload.Catatan,
		VoucherCode:     payload.VoucherCode,
	})
	if err != nil {
		logrus.Warnf("[order][handler] create failed customer_id=%s err=%v", actor.ID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK("order created, awaiting payment", response.OrderWithPaymentResponse{
		Order:   response.FromOrder(ord),
		Payment: response.FromPaymentToken(token),
	}))
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	orders, err := h.usecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("orders fetched", response.MyOrdersResponse{
		AsCustomer: response.FromOrders(orders.AsCustomer),
		AsWorker:   response.FromOrders(orders.AsWorker),
	}))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	ord, err := h.usecase.GetByID(c.Request.Context(), userID, c.Param("orderId"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("order fetched", response.FromOrder(ord)))
}

func (h *OrderHandler) AcceptOrder(c *gin.Context) {
	h.applyWorkerAction(c, "order accepted", h.usecase.Accept)
}

func (h *OrderHandler) RejectOrder(c *gin.Context) {
	h.applyWorkerAction(c, "order rejected", h.usecase.Reject)
}

func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.applyWorkerAction(c, "order completed", h.usecase.Complete)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	orderID := c.Param("orderId")

	ord, err := h.usecase.Cancel(c.Request.Context(), userID, orderID)
	if err != nil {
		logrus.Warnf("[order][handler] cancel failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("order cancelled", response.FromOrder(ord)))
}

func (h *OrderHandler) ProposeQuote(c *gin.Context) {
	var payload request.ProposeQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	orderID := c.Param("orderId")

	ord, err := h.usecase.ProposeQuote(c.Request.Context(), userID, orderID, payload.QuotedPrice)
	if err != nil {
		logrus.Warnf("[order][handler] propose quote failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("quote proposed", response.FromOrder(ord)))
}

func (h *OrderHandler) RespondToQuote(c *gin.Context) {
	var payload request.QuoteDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	orderID := c.Param("orderId")

	ord, err := h.usecase.RespondToQuote(c.Request.Context(), userID, orderID, payload.Decision)
	if err != nil {
		logrus.Warnf("[order][handler] quote response failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("quote "+payload.Decision+"ed", response.FromOrder(ord)))
}

// PayFinalQuote issues the payment token for the accepted quote.
func (h *OrderHandler) PayFinalQuote(c *gin.Context) {
	actor := actorFromContext(c)
	orderID := c.Param("orderId")

	ord, token, err := h.usecase.PayFinalQuote(c.Request.Context(), actor, orderID)
	if err != nil {
		logrus.Warnf("[order][handler] final payment failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("final payment token issued", response.OrderWithPaymentResponse{
		Order:   response.FromOrder(ord),
		Payment: response.FromPaymentToken(token),
	}))
}

// ForceStatus sets an order status directly. Admin only, wired behind the
// ADMIN role gate in the routes.
func (h *OrderHandler) ForceStatus(c *gin.Context) {
	var payload request.ForceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	orderID := c.Param("orderId")
	ord, err := h.usecase.ForceStatus(c.Request.Context(), orderID, entities.OrderStatus(payload.Status))
	if err != nil {
		logrus.Warnf("[order][handler] force status failed order_id=%s status=%s err=%v", orderID, payload.Status, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[order][handler] force status success order_id=%s status=%s", orderID, payload.Status)

	c.JSON(http.StatusOK, response.OK("order status updated", response.FromOrder(ord)))
}

// WorkerAvailability lists the schedule slots already booked for a worker.
func (h *OrderHandler) WorkerAvailability(c *gin.Context) {
	workerID := c.Param("workerId")

	slots, err := h.usecase.BookedSlots(c.Request.Context(), workerID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("availability fetched", response.AvailabilityResponse{
		WorkerID:    workerID,
		BookedSlots: slots,
	}))
}

// applyWorkerAction runs one of the worker-side transitions that share the
// same request shape: path order id, authenticated worker, no body.
func (h *OrderHandler) applyWorkerAction(c *gin.Context, message string, action func(ctx context.Context, workerID, orderID string) (entities.Order, error)) {
	userID := c.GetString(middleware.ContextUserIDKey)
	orderID := c.Param("orderId")

	ord, err := action(c.Request.Context(), userID, orderID)
	if err != nil {
		logrus.Warnf("[order][handler] worker action failed order_id=%s worker_id=%s err=%v", orderID, userID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(message, response.FromOrder(ord)))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotBookable):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_BOOKABLE", "Service is not available for booking", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidSchedule),
		errors.Is(err, usecase.ErrInvalidServicePrice),
		errors.Is(err, usecase.ErrUnknownServiceType),
		errors.Is(err, usecase.ErrInvalidQuotePrice),
		errors.Is(err, usecase.ErrInvalidQuoteDecision),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVoucher):
		return pkg.NewDomainErrorSimple("INVALID_VOUCHER", "Voucher is not applicable to this order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScheduleConflict):
		return pkg.NewDomainErrorSimple("SCHEDULE_CONFLICT", "Worker already has a job at this schedule", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotOrderWorker):
		return pkg.NewDomainErrorSimple("NOT_ORDER_WORKER", "Only the assigned worker can do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotOrderCustomer):
		return pkg.NewDomainErrorSimple("NOT_ORDER_CUSTOMER", "Only the order's customer can do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotOrderParticipant):
		return pkg.NewDomainErrorSimple("NOT_ORDER_PARTICIPANT", "You are not part of this order", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "Payment has not been confirmed for this order", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrQuoteNotAllowed):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ALLOWED", "Quotes are only available for survey services", http.StatusConflict)
	case errors.Is(err, usecase.ErrFinalAlreadyPaid):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_PAID", "Final quote has already been paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderStateConflict), errors.Is(err, usecase.ErrNoFinalPrice):
		return pkg.NewDomainErrorSimple("ORDER_STATE_CONFLICT", "Order state does not allow this action", http.StatusConflict)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
