package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paving_estimates/internal/domain/entities"
	"paving_estimates/internal/domain/pricing"
	"paving_estimates/internal/usecase/interfaces"
	"paving_estimates/pkg"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// ValidationError reports the first rule a submission violates. Validation is
// fail-fast: the message of a malformed multi-error submission is determined
// by the rule order in buildEstimate, which is part of the contract.
type ValidationError struct {
	msg string
}

// NewValidationError builds a user-facing validation failure from one of the
// fixed message templates.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// RateInput is the raw rate of a submitted item. Pointer fields distinguish
// an absent JSON key from a zero value; an absent price defaults to 0.
type RateInput struct {
	Price *float64
	Unit  *string
}

// ItemInput is one raw line of a submission. All six keys must be present.
type ItemInput struct {
	Margin *float64
	Name   *string
	Rate   *RateInput
	Time   *float64
	Type   *string
	Units  *float64
}

// AddressInput is the raw optional customer address.
type AddressInput struct {
	City    string
	Country string
	State   string
	Street  string
	Zip     string
}

// CreateEstimateInput is the raw estimate submission as received from the
// transport layer, before any validation.
type CreateEstimateInput struct {
	ContractorName  *string
	CustomerAddress *AddressInput
	CustomerName    *string
	Items           *[]ItemInput
}

// EstimateDetail is the retrieval view: the stored estimate plus its items
// partitioned by type for display grouping.
type EstimateDetail struct {
	Estimate       entities.Estimate
	LaborItems     []entities.Item
	MaterialItems  []entities.Item
	EquipmentItems []entities.Item
}

// IEstimateUseCase exposes the estimate engine operations.

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetEstimate(ctx context.Context, id string) (EstimateDetail, error)
	ListEstimates(ctx context.Context) ([]entities.EstimateSummary, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

// CreateEstimate validates and prices a raw submission, then persists the
// normalized record in a single insert. Any rule failure aborts the whole
// request; nothing is written.
func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	e, err := buildEstimate(in)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.repo.Create(ctx, e)
}

// GetEstimate fetches a stored estimate by id. A syntactically invalid id is
// rejected before any lookup, distinct from the not-found case. Stored
// cost/price values are returned as written, never recomputed.
func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string) (EstimateDetail, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return EstimateDetail{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return EstimateDetail{}, err
	}
	if e.ID == "" {
		return EstimateDetail{}, ErrEstimateNotFound
	}

	labor, materials, equipment := entities.PartitionItems(e.Items)
	return EstimateDetail{
		Estimate:       e,
		LaborItems:     labor,
		MaterialItems:  materials,
		EquipmentItems: equipment,
	}, nil
}

// ListEstimates returns the summary projection of every stored estimate.
func (u *EstimateUseCase) ListEstimates(ctx context.Context) ([]entities.EstimateSummary, error) {
	return u.repo.ListSummaries(ctx)
}

// buildEstimate runs the validation rules in contract order and assembles the
// normalized, fully priced record. Totals are rounded to 2 decimals and the
// blended margin is derived from the rounded totals, not from averaging
// per-item margins.
func buildEstimate(in CreateEstimateInput) (entities.Estimate, error) {
	if in.ContractorName == nil || in.CustomerName == nil || in.Items == nil {
		return entities.Estimate{}, NewValidationError("Invalid request.")
	}

	contractorName := strings.TrimSpace(*in.ContractorName)
	if contractorName == "" {
		return entities.Estimate{}, NewValidationError("Contractor name is required.")
	}

	customerName := strings.TrimSpace(*in.CustomerName)
	if customerName == "" {
		return entities.Estimate{}, NewValidationError("Customer name is required.")
	}

	var address *entities.Address
	if in.CustomerAddress != nil {
		normalized, ok := normalizeAddress(*in.CustomerAddress)
		if !ok {
			return entities.Estimate{}, NewValidationError("Address is invalid.")
		}
		address = &normalized
	}

	rawItems := *in.Items
	if len(rawItems) == 0 {
		return entities.Estimate{}, NewValidationError("At least one item is required for the estimate.")
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:              uuid.NewString(),
		ContractorName:  contractorName,
		CustomerAddress: address,
		CustomerName:    customerName,
		Items:           make([]entities.Item, 0, len(rawItems)),
		JobNumber:       pkg.RandomString(5, true) + "-" + pkg.RandomString(4, true),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, raw := range rawItems {
		item, err := buildItem(raw)
		if err != nil {
			return entities.Estimate{}, err
		}
		e.TotalCost += item.Cost
		e.TotalPrice += item.Price
		e.Items = append(e.Items, item)
	}

	e.TotalCost = pricing.Round2(e.TotalCost)
	e.TotalPrice = pricing.Round2(e.TotalPrice)
	if e.TotalPrice != 0 {
		e.TotalMargin = pricing.Round2(100 * (e.TotalPrice - e.TotalCost) / e.TotalPrice)
	}

	return e, nil
}

// buildItem validates one raw line in submission order and prices it.
func buildItem(raw ItemInput) (entities.Item, error) {
	if raw.Margin == nil || raw.Name == nil || raw.Rate == nil || raw.Time == nil || raw.Type == nil || raw.Units == nil {
		return entities.Item{}, NewValidationError("Invalid item found.")
	}

	item := entities.Item{
		Margin: *raw.Margin,
		Name:   strings.TrimSpace(*raw.Name),
		Time:   *raw.Time,
		Type:   entities.ItemType(*raw.Type),
		Units:  *raw.Units,
	}
	if raw.Rate.Price != nil {
		item.Rate.Price = *raw.Rate.Price
	}
	if raw.Rate.Unit != nil {
		item.Rate.Unit = strings.ToLower(strings.TrimSpace(*raw.Rate.Unit))
	}

	if !item.Type.IsValid() {
		return entities.Item{}, NewValidationError("Invalid item type.")
	}

	title := pkg.ToTitle(string(item.Type))

	if item.Name == "" {
		return entities.Item{}, NewValidationError("%s item is required.", title)
	}
	if item.Units < 1 {
		return entities.Item{}, NewValidationError("%s item units must be greater than 0.", title)
	}
	if item.Type != entities.ItemTypeMaterials && item.Time <= 0 {
		return entities.Item{}, NewValidationError("%s item time must be greater than 0.", title)
	}
	if item.Rate.Price < 0 {
		return entities.Item{}, NewValidationError("%s item rate must be a positive value.", title)
	}
	if item.Rate.Unit == "" {
		return entities.Item{}, NewValidationError("%s item rate unit is required.", title)
	}
	if item.Margin < 0 {
		return entities.Item{}, NewValidationError("%s item margin must be a positive value.", title)
	}
	// A margin of 100 or more would make the price infinite or negative.
	if item.Margin >= 100 {
		return entities.Item{}, NewValidationError("%s item margin must be less than 100.", title)
	}

	item.Cost = pricing.Cost(item.Units, item.Rate.Price, item.Time, item.Type)
	item.Price = pricing.Price(item.Cost, item.Margin)
	return item, nil
}

// normalizeAddress trims and lowercases every field; all five are required
// when an address is supplied at all.
func normalizeAddress(in AddressInput) (entities.Address, bool) {
	out := entities.Address{
		City:    strings.ToLower(strings.TrimSpace(in.City)),
		Country: strings.ToLower(strings.TrimSpace(in.Country)),
		State:   strings.ToLower(strings.TrimSpace(in.State)),
		Street:  strings.ToLower(strings.TrimSpace(in.Street)),
		Zip:     strings.ToLower(strings.TrimSpace(in.Zip)),
	}
	if out.City == "" || out.Country == "" || out.State == "" || out.Street == "" || out.Zip == "" {
		return entities.Address{}, false
	}
	return out, true
}
