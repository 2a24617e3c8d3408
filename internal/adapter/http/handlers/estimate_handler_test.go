package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paving_estimates/internal/adapter/http/handlers/mocks"
	"paving_estimates/internal/domain/entities"
	"paving_estimates/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validBody = `{
	"contractor_name": "Smith Paving LLC",
	"customer_name": "Jordan Doe",
	"items": [
		{"type": "labor", "name": "Paving", "units": 2, "time": 3, "rate": {"price": 10, "unit": "hr"}, "margin": 20}
	]
}`

func newCreateRouter(h *EstimateHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/estimates", h.CreateEstimate)
	return r
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newCreateRouter(NewEstimateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error message surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newCreateRouter(NewEstimateHandler(uc))

		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.NewValidationError("At least one item is required for the estimate."))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"contractor_name":"a","customer_name":"b","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "At least one item is required for the estimate." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("system error is opaque", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newCreateRouter(NewEstimateHandler(uc))

		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("dynamodb: connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Something went wrong" {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newCreateRouter(NewEstimateHandler(uc))

		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateEstimateInput) (entities.Estimate, error) {
				if in.ContractorName == nil || *in.ContractorName != "Smith Paving LLC" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Items == nil || len(*in.Items) != 1 {
					t.Fatalf("unexpected items: %+v", in.Items)
				}
				return entities.Estimate{ID: "est-1"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Successfully created estimate!" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *EstimateHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)
		return r
	}

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(NewEstimateHandler(uc))

		uc.EXPECT().GetEstimate(gomock.Any(), "not-a-uuid").Return(usecase.EstimateDetail{}, usecase.ErrInvalidEstimateID)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Invalid estimate" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(NewEstimateHandler(uc))

		uc.EXPECT().GetEstimate(gomock.Any(), "est-1").Return(usecase.EstimateDetail{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Estimate not found" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(NewEstimateHandler(uc))

		detail := usecase.EstimateDetail{
			Estimate: entities.Estimate{ID: "est-1", JobNumber: "12345-6789"},
			LaborItems: []entities.Item{
				{Name: "paving", Type: entities.ItemTypeLabor},
			},
			MaterialItems:  []entities.Item{},
			EquipmentItems: []entities.Item{},
		}
		uc.EXPECT().GetEstimate(gomock.Any(), "est-1").Return(detail, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		for _, key := range []string{"estimate", "labor_items", "material_items", "equipment_items"} {
			if _, ok := body[key]; !ok {
				t.Fatalf("missing %q in response: %s", key, w.Body.String())
			}
		}
	})
}

func TestEstimateHandler_ListEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *EstimateHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/estimates", h.ListEstimates)
		return r
	}

	t.Run("success excludes items and totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(NewEstimateHandler(uc))

		uc.EXPECT().ListEstimates(gomock.Any()).Return([]entities.EstimateSummary{
			{ID: "est-1", ContractorName: "Smith Paving LLC", CustomerName: "Jordan Doe", JobNumber: "12345-6789"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 summary, got %d", len(body))
		}
		for _, key := range []string{"items", "total_cost", "total_price", "total_margin"} {
			if _, ok := body[0][key]; ok {
				t.Fatalf("summary must not include %q: %s", key, w.Body.String())
			}
		}
		if body[0]["job_number"] != "12345-6789" {
			t.Fatalf("unexpected summary: %s", w.Body.String())
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(NewEstimateHandler(uc))

		uc.EXPECT().ListEstimates(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidEstimateID); got.HTTPStatus != http.StatusBadRequest || got.Message != "Invalid estimate" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusBadRequest || got.Message != "Estimate not found" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError || got.Message != "Something went wrong" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}
