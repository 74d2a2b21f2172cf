package handlers

import (
	"errors"
	"net/http"

	request "tukangku/internal/adapter/http/dto/request"
	response "tukangku/internal/adapter/http/dto/response"
	"tukangku/internal/usecase"
	"tukangku/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid notification payload", http.StatusBadRequest)

// PaymentHandler receives the payment gateway's asynchronous callbacks and
// serves transaction status lookups.

type PaymentHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewPaymentHandler(uc usecase.ISettlementUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// HandleNotification processes one gateway callback. It answers 200 for every
// understood callback, applied or not, so the gateway stops retrying; only a
// malformed body or an unknown order is an error.
func (h *PaymentHandler) HandleNotification(c *gin.Context) {
	var payload request.GatewayNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logrus.Warnf("[payment][handler] invalid notification payload err=%v", err)
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.HandleNotification(c.Request.Context(), payload.OrderID, payload.TransactionStatus, payload.FraudStatus)
	if err != nil {
		logrus.Warnf("[payment][handler] notification failed reference=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(result.Message, response.FromOrder(result.Order)))
}

// TransactionStatus proxies the gateway's status for an order's initial charge.
func (h *PaymentHandler) TransactionStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	status, err := h.usecase.TransactionStatus(c.Request.Context(), orderID)
	if err != nil {
		logrus.Warnf("[payment][handler] status lookup failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("transaction status fetched", status))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingOrderReference), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
