package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webatelier/internal/adapter/http/handlers/mocks"
	"webatelier/internal/domain/entities"
	"webatelier/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/orders", h.ListOrders)

		now := time.Now().UTC()
		uc.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{
			{ID: "o-1", Status: entities.OrderStatusPending, TotalPrice: 1999, CreatedAt: now, UpdatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "o-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAdminHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "o-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders/o-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders/o-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/orders/:order_id/status", h.UpdateOrderStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/orders/o-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/orders/:order_id/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "o-1", entities.OrderStatus("shipped")).Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/orders/o-1/status", bytes.NewBufferString(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/orders/:order_id/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "o-1", entities.OrderStatusInProgress).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/orders/o-1/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "in_progress" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAdminHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminUseCase(ctrl)
	h := NewAdminHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/stats", h.GetStats)

	uc.EXPECT().Stats(gomock.Any()).Return(entities.DashboardStats{
		TotalOrders:       2,
		TotalUsers:        1,
		TotalRevenue:      4498,
		AverageOrderValue: 2249,
		OrdersByStatus:    map[entities.OrderStatus]int{entities.OrderStatusPending: 2},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["total_orders"] != float64(2) || body["total_revenue"] != float64(4498) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapAdminError(t *testing.T) {
	if got := mapAdminError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAdminError(usecase.ErrInvalidOrderStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAdminError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAdminError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
