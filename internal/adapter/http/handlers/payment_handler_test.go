package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tukangku/internal/adapter/http/handlers/mocks"
	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_HandleNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/notification", h.HandleNotification)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notification", bytes.NewBufferString(`{"transaction_status":"settlement"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/notification", h.HandleNotification)

		uc.EXPECT().HandleNotification(gomock.Any(), "ord-x", "settlement", "accept").
			Return(usecase.SettlementResult{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notification",
			bytes.NewBufferString(`{"order_id":"ord-x","transaction_status":"settlement","fraud_status":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("settled callback answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/notification", h.HandleNotification)

		uc.EXPECT().HandleNotification(gomock.Any(), "ord-1", "settlement", "accept").
			Return(usecase.SettlementResult{
				Order:   entities.Order{ID: "ord-1", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPaid},
				Message: "payment settled",
				Applied: true,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notification",
			bytes.NewBufferString(`{"order_id":"ord-1","transaction_status":"settlement","fraud_status":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !body.Success || body.Message != "payment settled" {
			t.Fatalf("unexpected envelope: %+v", body)
		}
	})

	t.Run("replay still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/notification", h.HandleNotification)

		uc.EXPECT().HandleNotification(gomock.Any(), "ord-1", "settlement", "accept").
			Return(usecase.SettlementResult{
				Order:   entities.Order{ID: "ord-1", Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPaid},
				Message: "payment already processed",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notification",
			bytes.NewBufferString(`{"order_id":"ord-1","transaction_status":"settlement","fraud_status":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for replay, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_TransactionStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettlementUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments/:orderId/status", h.TransactionStatus)

	uc.EXPECT().TransactionStatus(gomock.Any(), "ord-1").Return(json.RawMessage(`{"transaction_status":"pending"}`), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/ord-1/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
