package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharma_express/internal/adapter/http/handlers/mocks"
	"pharma_express/internal/adapter/http/middleware"
	"pharma_express/internal/domain/entities"
	"pharma_express/internal/domain/selection"
	"pharma_express/internal/usecase"
	"pharma_express/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// withIdentity simulates what the auth middleware injects.
func withIdentity(userID int, sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextSessionID, sessionID)
		c.Set(middleware.ContextEmail, "a@b.com")
		c.Next()
	}
}

func TestOrderHandler_GetPhase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("month completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		lifecycle.EXPECT().ResolveCurrentPhase(gomock.Any(), 7).Return(entities.Phase{Kind: entities.PhaseMonthCompleted}, nil)

		r := gin.New()
		r.GET("/v1/orders/phase", withIdentity(7, "sess-1"), h.GetPhase)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/phase", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["phase"] != "month_completed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("missing identity maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		lifecycle.EXPECT().ResolveCurrentPhase(gomock.Any(), 0).Return(entities.Phase{}, usecase.ErrMissingIdentity)

		r := gin.New()
		r.GET("/v1/orders/phase", withIdentity(0, "sess-1"), h.GetPhase)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/phase", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no selection session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		sel.EXPECT().Snapshot("sess-1").Return(usecase.SelectionSnapshot{}, false)

		r := gin.New()
		r.POST("/v1/orders", withIdentity(7, "sess-1"), h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("creates from selection and rehydrates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		snap := usecase.SelectionSnapshot{SelectedIDs: []int{3, 5}, Total: 12.5, Remaining: 87.5, Budget: 100}
		order := entities.Order{ID: 42, Status: entities.OrderStatusInProgress, MedicineIDs: []int{3, 5}, TotalCost: 12.5}

		sel.EXPECT().Snapshot("sess-1").Return(snap, true)
		lifecycle.EXPECT().CreateOrder(gomock.Any(), 7, []int{3, 5}, 12.5).Return(entities.Phase{Kind: entities.PhaseInProgress, Order: &order}, nil)
		sel.EXPECT().Rehydrate("sess-1", []int{3, 5})
		sel.EXPECT().Snapshot("sess-1").Return(snap, true)

		r := gin.New()
		r.POST("/v1/orders", withIdentity(7, "sess-1"), h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["phase"] != "in_progress" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["order"] == nil || body["selection"] == nil {
			t.Fatalf("expected order and selection in body: %v", body)
		}
	})

	t.Run("upstream rejection maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		sel.EXPECT().Snapshot("sess-1").Return(usecase.SelectionSnapshot{}, true)
		lifecycle.EXPECT().CreateOrder(gomock.Any(), 7, gomock.Any(), gomock.Any()).Return(entities.Phase{}, &pkg.BackendError{StatusCode: 500, Body: "boom"})

		r := gin.New()
		r.POST("/v1/orders", withIdentity(7, "sess-1"), h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		r := gin.New()
		r.PATCH("/v1/orders", withIdentity(7, "sess-1"), h.UpdateOrder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("updates from selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		snap := usecase.SelectionSnapshot{SelectedIDs: []int{3}, Total: 5, Remaining: 95, Budget: 100}
		order := entities.Order{ID: 42, Status: entities.OrderStatusInProgress, MedicineIDs: []int{3}}

		sel.EXPECT().Snapshot("sess-1").Return(snap, true)
		lifecycle.EXPECT().UpdateOrder(gomock.Any(), 7, 42, []int{3}, 5.0).Return(entities.Phase{Kind: entities.PhaseInProgress, Order: &order}, nil)
		sel.EXPECT().Rehydrate("sess-1", []int{3})
		sel.EXPECT().Snapshot("sess-1").Return(snap, true)

		r := gin.New()
		r.PATCH("/v1/orders", withIdentity(7, "sess-1"), h.UpdateOrder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders", bytes.NewBufferString(`{"order_id":42}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_FinalizeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no active order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		lifecycle.EXPECT().FinalizeOrder(gomock.Any(), 42).Return(usecase.ErrNoActiveOrder)

		r := gin.New()
		r.POST("/v1/orders/finalize", withIdentity(7, "sess-1"), h.FinalizeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/finalize", bytes.NewBufferString(`{"order_id":42}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("finalize reports month completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewOrderHandler(lifecycle, sel)

		lifecycle.EXPECT().FinalizeOrder(gomock.Any(), 42).Return(nil)

		r := gin.New()
		r.POST("/v1/orders/finalize", withIdentity(7, "sess-1"), h.FinalizeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/finalize", bytes.NewBufferString(`{"order_id":42}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["phase"] != "month_completed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSelectionHandler_Toggle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("budget exceeded maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewSelectionHandler(sel)

		sel.EXPECT().Toggle("sess-1", 3, 40.0).Return(false, usecase.SelectionSnapshot{Budget: 100}, selection.ErrBudgetExceeded)

		r := gin.New()
		r.POST("/v1/selection/toggle", withIdentity(7, "sess-1"), h.Toggle)

		req := httptest.NewRequest(http.MethodPost, "/v1/selection/toggle", bytes.NewBufferString(`{"item_id":3,"price":40}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("toggle success returns snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sel := mocks.NewMockISelectionUseCase(ctrl)
		h := NewSelectionHandler(sel)

		snap := usecase.SelectionSnapshot{SelectedIDs: []int{3}, Total: 40, Remaining: 60, Budget: 100}
		sel.EXPECT().Toggle("sess-1", 3, 40.0).Return(true, snap, nil)

		r := gin.New()
		r.POST("/v1/selection/toggle", withIdentity(7, "sess-1"), h.Toggle)

		req := httptest.NewRequest(http.MethodPost, "/v1/selection/toggle", bytes.NewBufferString(`{"item_id":3,"price":40}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Selected  bool `json:"selected"`
			Selection struct {
				Total     float64 `json:"total"`
				Remaining float64 `json:"remaining"`
			} `json:"selection"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if !body.Selected || body.Selection.Total != 40 || body.Selection.Remaining != 60 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
