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

func TestWalletHandler_GetMyWallet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWalletUseCase(ctrl)
	h := NewWalletHandler(uc)

	r := gin.New()
	r.GET("/v1/wallet/me", injectClaims("worker-1", "WORKER"), h.GetMyWallet)

	uc.EXPECT().GetMyWallet(gomock.Any(), "worker-1").Return(usecase.WalletSummary{
		Wallet: entities.Wallet{WorkerID: "worker-1", CurrentBalance: 80000},
		Transactions: []entities.WalletTransaction{
			{ID: "tx-1", Type: entities.WalletTransactionCashIn, Amount: 80000, Status: entities.WalletTransactionSuccess},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/wallet/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			CurrentBalance int64 `json:"currentBalance"`
			Transactions   []any `json:"transactions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.CurrentBalance != 80000 || len(body.Data.Transactions) != 1 {
		t.Fatalf("unexpected wallet payload: %s", w.Body.String())
	}
}

func TestWalletHandler_RequestWithdrawal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := gin.New()
		r.POST("/v1/wallet/me/withdraw", injectClaims("worker-1", "WORKER"), h.RequestWithdrawal)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallet/me/withdraw", bytes.NewBufferString(`{"amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient balance maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := gin.New()
		r.POST("/v1/wallet/me/withdraw", injectClaims("worker-1", "WORKER"), h.RequestWithdrawal)

		uc.EXPECT().RequestWithdrawal(gomock.Any(), "worker-1", int64(999999), entities.WithdrawalDestination{Type: "bank", Account: "1234567890"}).
			Return(entities.WalletTransaction{}, usecase.ErrInsufficientBalance)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallet/me/withdraw",
			bytes.NewBufferString(`{"amount":999999,"destination":{"type":"bank","account":"1234567890"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success answers 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := gin.New()
		r.POST("/v1/wallet/me/withdraw", injectClaims("worker-1", "WORKER"), h.RequestWithdrawal)

		uc.EXPECT().RequestWithdrawal(gomock.Any(), "worker-1", int64(50000), gomock.Any()).
			Return(entities.WalletTransaction{ID: "tx-1", Amount: 50000, Type: entities.WalletTransactionCashOut, Status: entities.WalletTransactionPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallet/me/withdraw",
			bytes.NewBufferString(`{"amount":50000,"destination":{"type":"bank","account":"1234567890"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
