package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_api/internal/adapter/http/handlers/mocks"
	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_OpenDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body opens a draft with the default policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().OpenDraft(gomock.Any(), "").Return(entities.OrderDraft{
			ID:     "draft-1",
			Policy: entities.QuantityPolicyClamp,
			State:  entities.DraftStateEditing,
			Status: entities.OrderStatusAgendado,
		}, nil)

		r := gin.New()
		r.POST("/v1/order-drafts", h.OpenDraft)

		req := httptest.NewRequest(http.MethodPost, "/v1/order-drafts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "draft-1" || body["policy"] != "clamp" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/order-drafts", h.OpenDraft)

		req := httptest.NewRequest(http.MethodPost, "/v1/order-drafts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_AddDraftItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults quantity to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().AddDraftItem(gomock.Any(), "draft-1", int64(5), 1).
			Return(entities.OrderDraft{ID: "draft-1"}, nil)

		r := gin.New()
		r.POST("/v1/order-drafts/:id/items", h.AddDraftItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/order-drafts/draft-1/items", bytes.NewBufferString(`{"item_id":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("out-of-stock conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().AddDraftItem(gomock.Any(), "draft-1", int64(5), 1).
			Return(entities.OrderDraft{}, entities.ErrItemOutOfStock)

		r := gin.New()
		r.POST("/v1/order-drafts/:id/items", h.AddDraftItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/order-drafts/draft-1/items", bytes.NewBufferString(`{"item_id":5,"quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_SetDraftItemQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unselected item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().SetDraftItemQuantity(gomock.Any(), "draft-1", int64(5), 2).
			Return(entities.OrderDraft{}, entities.ErrItemLineNotFound)

		r := gin.New()
		r.PATCH("/v1/order-drafts/:id/items/:item_id", h.SetDraftItemQuantity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/order-drafts/draft-1/items/5", bytes.NewBufferString(`{"quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-numeric item id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/order-drafts/:id/items/:item_id", h.SetDraftItemQuantity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/order-drafts/draft-1/items/abc", bytes.NewBufferString(`{"quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_SubmitDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failure returns the field map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().SubmitDraft(gomock.Any(), "draft-1").Return(entities.ServiceOrder{}, &usecase.ValidationError{
			Fields: map[string]string{
				"vehicle_id": "Selecione um veículo",
				"cost":       "Informe o valor do serviço",
			},
		})

		r := gin.New()
		r.POST("/v1/order-drafts/:id/submit", h.SubmitDraft)

		req := httptest.NewRequest(http.MethodPost, "/v1/order-drafts/draft-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Code != "VALIDATION_FAILED" {
			t.Fatalf("unexpected code: %s", body.Code)
		}
		if body.Fields["vehicle_id"] != "Selecione um veículo" {
			t.Fatalf("unexpected fields: %v", body.Fields)
		}
	})

	t.Run("success returns the created order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().SubmitDraft(gomock.Any(), "draft-1").Return(entities.ServiceOrder{
			ID:        "os-1",
			Type:      entities.OrderTypeManutencao,
			Status:    entities.OrderStatusAgendado,
			TotalCost: 114,
		}, nil)

		r := gin.New()
		r.POST("/v1/order-drafts/:id/submit", h.SubmitDraft)

		req := httptest.NewRequest(http.MethodPost, "/v1/order-drafts/draft-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "os-1" || body["total_cost"] != 114.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().SubmitDraft(gomock.Any(), "missing").Return(entities.ServiceOrder{}, usecase.ErrDraftNotFound)

		r := gin.New()
		r.POST("/v1/order-drafts/:id/submit", h.SubmitDraft)

		req := httptest.NewRequest(http.MethodPost, "/v1/order-drafts/missing/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CancelDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	uc.EXPECT().CancelDraft(gomock.Any(), "draft-1").Return(nil)

	r := gin.New()
	r.DELETE("/v1/order-drafts/:id", h.CancelDraft)

	req := httptest.NewRequest(http.MethodDelete, "/v1/order-drafts/draft-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
