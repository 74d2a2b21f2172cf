package handlers

import (
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

func TestServiceHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewServiceHandler(uc)

	r := gin.New()
	r.GET("/v1/services", h.ListServices)

	uc.EXPECT().ListApprovedServices(gomock.Any()).Return([]entities.Service{
		{ID: "svc-1", NamaLayanan: "Servis AC", Harga: 100000, TipeLayanan: entities.ServiceTypeFixed, StatusPersetujuan: entities.ApprovalStatusApproved},
		{ID: "svc-2", NamaLayanan: "Perbaikan Atap", TipeLayanan: entities.ServiceTypeSurvey, StatusPersetujuan: entities.ApprovalStatusApproved},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Success || len(body.Data) != 2 {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
}

func TestServiceHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:serviceId", h.GetService)

		uc.EXPECT().GetServiceByID(gomock.Any(), "svc-x").Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:serviceId", h.GetService)

		uc.EXPECT().GetServiceByID(gomock.Any(), "svc-1").
			Return(entities.Service{ID: "svc-1", NamaLayanan: "Servis AC", Harga: 100000}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
