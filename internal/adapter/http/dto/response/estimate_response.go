package response

import (
	"paving_estimates/internal/domain/entities"
	"paving_estimates/internal/usecase"
)

type CreateEstimateResponse struct {
	Message string `json:"message"`
}

func NewCreateEstimateResponse() CreateEstimateResponse {
	return CreateEstimateResponse{Message: "Successfully created estimate!"}
}

// EstimateDetailResponse is the retrieval payload: the stored record plus the
// same items partitioned by type for display grouping.
type EstimateDetailResponse struct {
	Estimate       entities.Estimate `json:"estimate"`
	LaborItems     []entities.Item   `json:"labor_items"`
	MaterialItems  []entities.Item   `json:"material_items"`
	EquipmentItems []entities.Item   `json:"equipment_items"`
}

func FromEstimateDetail(d usecase.EstimateDetail) EstimateDetailResponse {
	return EstimateDetailResponse{
		Estimate:       d.Estimate,
		LaborItems:     d.LaborItems,
		MaterialItems:  d.MaterialItems,
		EquipmentItems: d.EquipmentItems,
	}
}

// EstimateSummaryResponse is the listing projection. No items, no totals.
type EstimateSummaryResponse struct {
	ID             string `json:"id"`
	ContractorName string `json:"contractor_name"`
	CustomerName   string `json:"customer_name"`
	JobNumber      string `json:"job_number"`
}

func FromEstimateSummaries(summaries []entities.EstimateSummary) []EstimateSummaryResponse {
	out := make([]EstimateSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, EstimateSummaryResponse{
			ID:             s.ID,
			ContractorName: s.ContractorName,
			CustomerName:   s.CustomerName,
			JobNumber:      s.JobNumber,
		})
	}
	return out
}
