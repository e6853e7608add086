package material

import (
	"time"

	"github.com/erp/mockerp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Type classifies a material in the master data
type Type string

const (
	TypeRaw      Type = "RAW"
	TypeFinished Type = "FINISHED"
)

// IsValid checks if the type is one of the known material types.
// The set is extensible; unknown types are tolerated by the master
// but flagged here for callers that care.
func (t Type) IsValid() bool {
	switch t {
	case TypeRaw, TypeFinished:
		return true
	}
	return false
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}

// PlantData holds per-plant stock information for a material
type PlantData struct {
	StorageLocation   string          `json:"storage_location"`
	UnrestrictedStock decimal.Decimal `json:"unrestricted_stock"`
}

// Valuation holds pricing information for a material
type Valuation struct {
	StandardPrice decimal.Decimal `json:"standard_price"`
	PriceUnit     int             `json:"price_unit"`
	Currency      string          `json:"currency"`
}

// Material represents a material master record.
// Identity is immutable once created; there is no delete or rename.
type Material struct {
	MaterialID  string               `json:"material_id"`
	Description string               `json:"description"`
	Type        Type                 `json:"type"`
	BaseUnit    string               `json:"base_unit"`
	PlantData   map[string]PlantData `json:"plant_data"`
	Valuation   Valuation            `json:"valuation_data"`
	CreatedAt   time.Time            `json:"created_at"`
}

// NewMaterial creates a new material master record.
// Required-field validation reports every missing field, not just the first.
func NewMaterial(materialID, description string, matType Type, baseUnit string) (*Material, error) {
	if materialID == "" {
		return nil, shared.NewDomainError(CodeMissingIdentifier, "Missing material ID")
	}

	var missing []string
	if description == "" {
		missing = append(missing, "description")
	}
	if matType == "" {
		missing = append(missing, "type")
	}
	if baseUnit == "" {
		missing = append(missing, "base_unit")
	}
	if len(missing) > 0 {
		return nil, newMissingFieldsError(missing)
	}

	return &Material{
		MaterialID:  materialID,
		Description: description,
		Type:        matType,
		BaseUnit:    baseUnit,
		PlantData:   make(map[string]PlantData),
		CreatedAt:   time.Now(),
	}, nil
}

// SetPlantData sets the stock entry for a plant
func (m *Material) SetPlantData(plant string, data PlantData) error {
	if plant == "" {
		return shared.NewDomainError(CodeInvalidPlant, "Plant code cannot be empty")
	}
	if data.UnrestrictedStock.IsNegative() {
		return shared.NewDomainError(CodeInvalidStock, "Unrestricted stock cannot be negative")
	}
	if m.PlantData == nil {
		m.PlantData = make(map[string]PlantData)
	}
	m.PlantData[plant] = data
	return nil
}

// SetValuation sets the valuation data for the material
func (m *Material) SetValuation(v Valuation) {
	m.Valuation = v
}

// HasPlant reports whether the material carries stock data for the plant
func (m *Material) HasPlant(plant string) bool {
	_, ok := m.PlantData[plant]
	return ok
}

// AvailabilityAt builds the point-in-time availability view for a plant.
// The view is a value copy; later master-data edits do not affect it.
func (m *Material) AvailabilityAt(plant string) (AvailabilityView, bool) {
	pd, ok := m.PlantData[plant]
	if !ok {
		return AvailabilityView{}, false
	}
	return AvailabilityView{
		MaterialID:        m.MaterialID,
		Plant:             plant,
		Description:       m.Description,
		BaseUnit:          m.BaseUnit,
		StorageLocation:   pd.StorageLocation,
		UnrestrictedStock: pd.UnrestrictedStock,
		Valuation:         m.Valuation,
	}, true
}

// Clone returns a deep copy of the material
func (m *Material) Clone() *Material {
	clone := *m
	clone.PlantData = make(map[string]PlantData, len(m.PlantData))
	for plant, data := range m.PlantData {
		clone.PlantData[plant] = data
	}
	return &clone
}

// AvailabilityView is a point-in-time snapshot of material availability
// at a plant. It is always copied by value, never shared with the master.
type AvailabilityView struct {
	MaterialID        string          `json:"material_id"`
	Plant             string          `json:"plant"`
	Description       string          `json:"description"`
	BaseUnit          string          `json:"base_unit"`
	StorageLocation   string          `json:"storage_location"`
	UnrestrictedStock decimal.Decimal `json:"unrestricted_stock"`
	Valuation         Valuation       `json:"valuation"`
}
