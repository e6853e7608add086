package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/erp/mockerp/internal/domain/material"
)

// SeedMaterials loads the default material master records. Existing
// records with the same identifiers are left untouched.
func SeedMaterials(ctx context.Context, repo material.Repository) error {
	seeds := []struct {
		id          string
		description string
		matType     material.Type
		baseUnit    string
		plant       string
		storageLoc  string
		stock       string
		price       string
	}{
		{"MAT001", "Raw Material A", material.TypeRaw, "KG", "PLANT_1", "A01", "1000.0", "10.00"},
		{"MAT002", "Finished Product B", material.TypeFinished, "EA", "PLANT_1", "A02", "500.0", "25.00"},
	}

	for _, seed := range seeds {
		exists, err := repo.Exists(ctx, seed.id)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		m, err := material.NewMaterial(seed.id, seed.description, seed.matType, seed.baseUnit)
		if err != nil {
			return err
		}
		if err := m.SetPlantData(seed.plant, material.PlantData{
			StorageLocation:   seed.storageLoc,
			UnrestrictedStock: decimal.RequireFromString(seed.stock),
		}); err != nil {
			return err
		}
		m.SetValuation(material.Valuation{
			StandardPrice: decimal.RequireFromString(seed.price),
			PriceUnit:     1,
			Currency:      "USD",
		})
		if err := repo.Insert(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
