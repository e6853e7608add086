package material

import (
	"github.com/shopspring/decimal"

	"github.com/erp/mockerp/internal/domain/material"
)

// AvailabilityRequest asks for the availability of a material at a plant
type AvailabilityRequest struct {
	MaterialID string `json:"material_id"`
	Plant      string `json:"plant"`
}

// ValuationView mirrors material valuation on the wire
type ValuationView struct {
	StandardPrice decimal.Decimal `json:"standard_price"`
	PriceUnit     int             `json:"price_unit"`
	Currency      string          `json:"currency"`
}

// AvailabilityResponse is the point-in-time availability view returned by
// the gateway. The same shape is embedded into requisitions as the
// material snapshot.
type AvailabilityResponse struct {
	MaterialID        string          `json:"material_id"`
	Plant             string          `json:"plant"`
	Description       string          `json:"description"`
	BaseUnit          string          `json:"base_unit"`
	StorageLocation   string          `json:"storage_location"`
	UnrestrictedStock decimal.Decimal `json:"unrestricted_stock"`
	Valuation         ValuationView   `json:"valuation"`
}

// PlantDataInput is per-plant stock data supplied when defining a material
type PlantDataInput struct {
	StorageLocation   string          `json:"storage_location"`
	UnrestrictedStock decimal.Decimal `json:"unrestricted_stock"`
}

// ValuationInput is pricing data supplied when defining a material.
// A nil ValuationInput on the request means the section was absent and
// defaults apply as a whole.
type ValuationInput struct {
	StandardPrice decimal.Decimal `json:"standard_price"`
	PriceUnit     int             `json:"price_unit"`
	Currency      string          `json:"currency"`
}

// DefineRequest defines a new material master record
type DefineRequest struct {
	MaterialID  string                    `json:"material_id"`
	Description string                    `json:"description"`
	Type        string                    `json:"type"`
	BaseUnit    string                    `json:"base_unit"`
	PlantData   map[string]PlantDataInput `json:"plant_data,omitempty"`
	Valuation   *ValuationInput           `json:"valuation_data,omitempty"`
}

// DefineResponse confirms a material definition
type DefineResponse struct {
	MaterialID string `json:"material_id"`
	Message    string `json:"message"`
}

// MaterialResponse is the full master record view
type MaterialResponse struct {
	MaterialID  string                    `json:"material_id"`
	Description string                    `json:"description"`
	Type        string                    `json:"type"`
	BaseUnit    string                    `json:"base_unit"`
	PlantData   map[string]PlantDataInput `json:"plant_data"`
	Valuation   ValuationView             `json:"valuation_data"`
	CreatedAt   string                    `json:"created_at"`
}

func toAvailabilityResponse(view material.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		MaterialID:        view.MaterialID,
		Plant:             view.Plant,
		Description:       view.Description,
		BaseUnit:          view.BaseUnit,
		StorageLocation:   view.StorageLocation,
		UnrestrictedStock: view.UnrestrictedStock,
		Valuation: ValuationView{
			StandardPrice: view.Valuation.StandardPrice,
			PriceUnit:     view.Valuation.PriceUnit,
			Currency:      view.Valuation.Currency,
		},
	}
}

func toMaterialResponse(m *material.Material) *MaterialResponse {
	plantData := make(map[string]PlantDataInput, len(m.PlantData))
	for plant, pd := range m.PlantData {
		plantData[plant] = PlantDataInput{
			StorageLocation:   pd.StorageLocation,
			UnrestrictedStock: pd.UnrestrictedStock,
		}
	}
	return &MaterialResponse{
		MaterialID:  m.MaterialID,
		Description: m.Description,
		Type:        m.Type.String(),
		BaseUnit:    m.BaseUnit,
		PlantData:   plantData,
		Valuation: ValuationView{
			StandardPrice: m.Valuation.StandardPrice,
			PriceUnit:     m.Valuation.PriceUnit,
			Currency:      m.Valuation.Currency,
		},
		CreatedAt: m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
