package response

import (
	"encoding/json"
	"testing"

	"paving_estimates/internal/domain/entities"
	"paving_estimates/internal/usecase"
)

func TestFromEstimateDetail(t *testing.T) {
	d := usecase.EstimateDetail{
		Estimate:       entities.Estimate{ID: "est-1", JobNumber: "12345-6789"},
		LaborItems:     []entities.Item{{Name: "paving", Type: entities.ItemTypeLabor}},
		MaterialItems:  []entities.Item{},
		EquipmentItems: []entities.Item{},
	}

	res := FromEstimateDetail(d)
	if res.Estimate.ID != "est-1" || len(res.LaborItems) != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]json.RawMessage
	_ = json.Unmarshal(raw, &body)
	for _, key := range []string{"estimate", "labor_items", "material_items", "equipment_items"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing %q in %s", key, raw)
		}
	}
}

func TestFromEstimateSummaries(t *testing.T) {
	res := FromEstimateSummaries([]entities.EstimateSummary{
		{ID: "est-1", ContractorName: "Smith Paving LLC", CustomerName: "Jordan Doe", JobNumber: "12345-6789"},
	})
	if len(res) != 1 || res[0].JobNumber != "12345-6789" {
		t.Fatalf("unexpected summaries: %+v", res)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body []map[string]json.RawMessage
	_ = json.Unmarshal(raw, &body)
	for _, key := range []string{"items", "total_cost", "total_price", "total_margin"} {
		if _, ok := body[0][key]; ok {
			t.Fatalf("summary must not carry %q: %s", key, raw)
		}
	}
}

func TestNewCreateEstimateResponse(t *testing.T) {
	if NewCreateEstimateResponse().Message != "Successfully created estimate!" {
		t.Fatalf("unexpected message: %+v", NewCreateEstimateResponse())
	}
}
