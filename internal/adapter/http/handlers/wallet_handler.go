package handlers

import (
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

var errInvalidWithdrawalPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid withdrawal payload", http.StatusBadRequest)

// WalletHandler serves a worker's earnings wallet.

type WalletHandler struct {
	usecase usecase.IWalletUseCase
}

func NewWalletHandler(uc usecase.IWalletUseCase) *WalletHandler {
	return &WalletHandler{usecase: uc}
}

func (h *WalletHandler) GetMyWallet(c *gin.Context) {
	workerID := c.GetString(middleware.ContextUserIDKey)

	summary, err := h.usecase.GetMyWallet(c.Request.Context(), workerID)
	if err != nil {
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("wallet fetched", response.FromWalletSummary(summary)))
}

func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	var payload request.WithdrawalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWithdrawalPayload.HTTPStatus, errInvalidWithdrawalPayload.ToHTTPError())
		return
	}

	workerID := c.GetString(middleware.ContextUserIDKey)
	tx, err := h.usecase.RequestWithdrawal(c.Request.Context(), workerID, payload.Amount, entities.WithdrawalDestination{
		Type:    payload.Destination.Type,
		Account: payload.Destination.Account,
	})
	if err != nil {
		logrus.Warnf("[wallet][handler] withdrawal failed worker_id=%s err=%v", workerID, err)
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK("withdrawal requested", response.FromWalletTransaction(tx)))
}

func mapWalletError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWithdrawalAmount), errors.Is(err, usecase.ErrMissingWithdrawalDestination):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientBalance):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Wallet balance is not enough", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
