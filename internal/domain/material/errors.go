package material

import (
	"fmt"
	"strings"

	"github.com/erp/mockerp/internal/domain/shared"
)

// Error codes for material master operations. The external interface maps
// these to the SAP-compatible wire codes in interfaces/http/dto.
const (
	CodeInvalidInput       = "MAT_INVALID_INPUT"
	CodeNotFound           = "MAT_NOT_FOUND"
	CodePlantNotConfigured = "MAT_PLANT_NOT_CONFIGURED"
	CodeMissingIdentifier  = "MAT_MISSING_ID"
	CodeAlreadyExists      = "MAT_ALREADY_EXISTS"
	CodeMissingFields      = "MAT_MISSING_FIELDS"
	CodeInvalidPlant       = "MAT_INVALID_PLANT"
	CodeInvalidStock       = "MAT_INVALID_STOCK"
	CodeInternal           = "MAT_INTERNAL"
)

// ErrInvalidLookupInput is returned when an availability check is missing
// its material ID or plant code.
func ErrInvalidLookupInput() *shared.DomainError {
	return shared.NewDomainError(CodeInvalidInput, "Invalid material ID or plant code")
}

// ErrNotFound is returned when the material is not defined in the master
func ErrNotFound(materialID string) *shared.DomainError {
	return shared.NewDomainError(CodeNotFound, fmt.Sprintf("Material %s not found", materialID))
}

// ErrPlantNotConfigured is returned when the material exists but carries
// no stock data for the requested plant.
func ErrPlantNotConfigured(materialID, plant string) *shared.DomainError {
	return shared.NewDomainError(CodePlantNotConfigured,
		fmt.Sprintf("Material %s not configured for plant %s", materialID, plant))
}

// ErrAlreadyExists is returned on re-definition of an existing material.
// Re-definition is always rejected, never merged.
func ErrAlreadyExists(materialID string) *shared.DomainError {
	return shared.NewDomainError(CodeAlreadyExists, fmt.Sprintf("Material %s already exists", materialID))
}

// ErrInvalidPlant is returned when supplied plant data names an
// unrecognized plant code.
func ErrInvalidPlant(plant string) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(CodeInvalidPlant,
		fmt.Sprintf("Invalid plant %s in plant_data", plant),
		map[string]any{"plant": plant})
}

func newMissingFieldsError(missing []string) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(CodeMissingFields,
		fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
		map[string]any{"missing_fields": missing})
}
