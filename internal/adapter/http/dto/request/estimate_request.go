package request

import "paving_estimates/internal/usecase"

type RateRequest struct {
	Price *float64 `json:"price"`
	Unit  *string  `json:"unit"`
}

type ItemRequest struct {
	Margin *float64     `json:"margin"`
	Name   *string      `json:"name"`
	Rate   *RateRequest `json:"rate"`
	Time   *float64     `json:"time"`
	Type   *string      `json:"type"`
	Units  *float64     `json:"units"`
}

type AddressRequest struct {
	City    string `json:"city"`
	Country string `json:"country"`
	State   string `json:"state"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
}

// CreateEstimateRequest mirrors the submission payload. Pointer fields keep an
// absent JSON key distinguishable from a zero value, so the usecase can apply
// its key-presence rules ("Invalid request." / "Invalid item found.") instead
// of gin's binding errors.
type CreateEstimateRequest struct {
	ContractorName  *string         `json:"contractor_name"`
	CustomerAddress *AddressRequest `json:"customer_address"`
	CustomerName    *string         `json:"customer_name"`
	Items           *[]ItemRequest  `json:"items"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	in := usecase.CreateEstimateInput{
		ContractorName: r.ContractorName,
		CustomerName:   r.CustomerName,
	}

	if r.CustomerAddress != nil {
		in.CustomerAddress = &usecase.AddressInput{
			City:    r.CustomerAddress.City,
			Country: r.CustomerAddress.Country,
			State:   r.CustomerAddress.State,
			Street:  r.CustomerAddress.Street,
			Zip:     r.CustomerAddress.Zip,
		}
	}

	if r.Items != nil {
		items := make([]usecase.ItemInput, 0, len(*r.Items))
		for _, item := range *r.Items {
			converted := usecase.ItemInput{
				Margin: item.Margin,
				Name:   item.Name,
				Time:   item.Time,
				Type:   item.Type,
				Units:  item.Units,
			}
			if item.Rate != nil {
				converted.Rate = &usecase.RateInput{Price: item.Rate.Price, Unit: item.Rate.Unit}
			}
			items = append(items, converted)
		}
		in.Items = &items
	}

	return in
}
