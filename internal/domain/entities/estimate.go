package entities

import "time"

// ItemType classifies an estimate line item. The type decides whether time
// participates in the cost formula: materials are priced per quantity only,
// labor and equipment are priced per quantity and hours.

type ItemType string

const (
	ItemTypeLabor     ItemType = "labor"
	ItemTypeMaterials ItemType = "materials"
	ItemTypeEquipment ItemType = "equipment"
)

// IsValid reports whether t is one of the three known item types.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeLabor, ItemTypeMaterials, ItemTypeEquipment:
		return true
	}
	return false
}

// Rate is the unit price of an item. Unit is a free-text label ("hr", "ton")
// stored trimmed and lowercased.
type Rate struct {
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

// Item is one priced line in an estimate. Cost and Price are always computed
// by the service at creation time, never taken from the caller.
type Item struct {
	Cost   float64  `json:"cost"`
	Margin float64  `json:"margin"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Rate   Rate     `json:"rate"`
	Time   float64  `json:"time"`
	Type   ItemType `json:"type"`
	Units  float64  `json:"units"`
}

// Address is the optional customer address. All fields are stored trimmed and
// lowercased; display casing is a client concern.
type Address struct {
	City    string `json:"city"`
	Country string `json:"country"`
	State   string `json:"state"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
}

// Estimate is the persisted estimate record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// An estimate is created atomically from a validated submission and is
// immutable afterwards: totals are stored at write time and never recomputed
// on read.
type Estimate struct {
	ID              string    `json:"id"`
	ContractorName  string    `json:"contractor_name"`
	CustomerAddress *Address  `json:"customer_address,omitempty"`
	CustomerName    string    `json:"customer_name"`
	Items           []Item    `json:"items"`
	JobNumber       string    `json:"job_number"`
	TotalCost       float64   `json:"total_cost"`
	TotalMargin     float64   `json:"total_margin"`
	TotalPrice      float64   `json:"total_price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EstimateSummary is the listing projection: no items, no totals.
type EstimateSummary struct {
	ID             string `json:"id"`
	ContractorName string `json:"contractor_name"`
	CustomerName   string `json:"customer_name"`
	JobNumber      string `json:"job_number"`
}

// PartitionItems splits items into the three type groups used for display,
// preserving the original relative order within each group.
func PartitionItems(items []Item) (labor, materials, equipment []Item) {
	labor = []Item{}
	materials = []Item{}
	equipment = []Item{}
	for _, item := range items {
		switch item.Type {
		case ItemTypeLabor:
			labor = append(labor, item)
		case ItemTypeMaterials:
			materials = append(materials, item)
		default:
			equipment = append(equipment, item)
		}
	}
	return labor, materials, equipment
}
