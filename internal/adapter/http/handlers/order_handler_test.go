package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tukangku/internal/adapter/http/handlers/mocks"
	"tukangku/internal/adapter/http/middleware"
	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase"
	"tukangku/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// injectClaims stands in for the auth middleware in handler tests.
func injectClaims(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Set(middleware.ContextRoleKey, role)
		c.Set(middleware.ContextEmailKey, userID+"@test.com")
		c.Set(middleware.ContextNamaKey, "Tester")
		c.Next()
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", injectClaims("cust-1", "CUSTOMER"), h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"catatan":"no service"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("schedule conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", injectClaims("cust-1", "CUSTOMER"), h.CreateOrder)

		uc.EXPECT().CreateWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, interfaces.PaymentToken{}, usecase.ErrScheduleConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders",
			bytes.NewBufferString(`{"serviceId":"svc-1","jadwalPerbaikan":"2026-03-14T09:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns order and payment token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", injectClaims("cust-1", "CUSTOMER"), h.CreateOrder)

		slot := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().CreateWithPayment(gomock.Any(), gomock.Any(), usecase.CreateOrderInput{
			ServiceID:       "svc-1",
			JadwalPerbaikan: slot,
		}).Return(
			entities.Order{ID: "ord-1", CustomerID: "cust-1", Status: entities.OrderStatusAwaitingPayment, JadwalPerbaikan: slot},
			interfaces.PaymentToken{Token: "tok-1", RedirectURL: "https://pay.example/tok-1"},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders",
			bytes.NewBufferString(`{"serviceId":"svc-1","jadwalPerbaikan":"2026-03-14T09:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Order struct {
					ID string `json:"id"`
				} `json:"order"`
				Payment struct {
					Token string `json:"token"`
				} `json:"payment"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !body.Success || body.Data.Payment.Token != "tok-1" {
			t.Fatalf("unexpected envelope: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_WorkerActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept maps payment gate to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:orderId/accept", injectClaims("worker-1", "WORKER"), h.AcceptOrder)

		uc.EXPECT().Accept(gomock.Any(), "worker-1", "ord-1").Return(entities.Order{}, usecase.ErrPaymentRequired)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/ord-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("complete maps stranger to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:orderId/complete", injectClaims("worker-2", "WORKER"), h.CompleteOrder)

		uc.EXPECT().Complete(gomock.Any(), "worker-2", "ord-1").Return(entities.Order{}, usecase.ErrNotOrderWorker)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/ord-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:orderId/accept", injectClaims("worker-1", "WORKER"), h.AcceptOrder)

		uc.EXPECT().Accept(gomock.Any(), "worker-1", "ord-1").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/ord-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_QuoteEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("propose quote rejects non-positive price at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:orderId/quote", injectClaims("worker-1", "WORKER"), h.ProposeQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/quote", bytes.NewBufferString(`{"quotedPrice":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("respond with accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:orderId/quote/respond", injectClaims("cust-1", "CUSTOMER"), h.RespondToQuote)

		uc.EXPECT().RespondToQuote(gomock.Any(), "cust-1", "ord-1", "accept").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusQuoteAccepted, FinalPrice: 250000}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/ord-1/quote/respond", bytes.NewBufferString(`{"decision":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pay final quote already paid maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:orderId/pay", injectClaims("cust-1", "CUSTOMER"), h.PayFinalQuote)

		uc.EXPECT().PayFinalQuote(gomock.Any(), gomock.Any(), "ord-1").
			Return(entities.Order{}, interfaces.PaymentToken{}, usecase.ErrFinalAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
