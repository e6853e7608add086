package material

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/mockerp/internal/domain/shared"
)

func TestNewMaterial(t *testing.T) {
	t.Run("creates material with valid fields", func(t *testing.T) {
		m, err := NewMaterial("MAT100", "Test Material", TypeRaw, "KG")
		require.NoError(t, err)

		assert.Equal(t, "MAT100", m.MaterialID)
		assert.Equal(t, "Test Material", m.Description)
		assert.Equal(t, TypeRaw, m.Type)
		assert.Equal(t, "KG", m.BaseUnit)
		assert.NotNil(t, m.PlantData)
		assert.Empty(t, m.PlantData)
		assert.False(t, m.CreatedAt.IsZero())
	})

	t.Run("rejects missing material ID", func(t *testing.T) {
		_, err := NewMaterial("", "Test Material", TypeRaw, "KG")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, CodeMissingIdentifier, domainErr.Code)
	})

	t.Run("reports all missing fields at once", func(t *testing.T) {
		_, err := NewMaterial("MAT100", "", "", "")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, CodeMissingFields, domainErr.Code)
		assert.ElementsMatch(t, []string{"description", "type", "base_unit"},
			domainErr.Details["missing_fields"])
	})

	t.Run("reports single missing field", func(t *testing.T) {
		_, err := NewMaterial("MAT100", "Test Material", TypeRaw, "")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, CodeMissingFields, domainErr.Code)
		assert.Equal(t, "Missing required fields: base_unit", domainErr.Message)
	})
}

func TestMaterialPlantData(t *testing.T) {
	newTestMaterial := func(t *testing.T) *Material {
		m, err := NewMaterial("MAT100", "Test Material", TypeRaw, "KG")
		require.NoError(t, err)
		return m
	}

	t.Run("sets plant data", func(t *testing.T) {
		m := newTestMaterial(t)
		err := m.SetPlantData("PLANT_1", PlantData{
			StorageLocation:   "A01",
			UnrestrictedStock: decimal.NewFromInt(100),
		})
		require.NoError(t, err)

		assert.True(t, m.HasPlant("PLANT_1"))
		assert.False(t, m.HasPlant("PLANT_2"))
	})

	t.Run("rejects empty plant code", func(t *testing.T) {
		m := newTestMaterial(t)
		err := m.SetPlantData("", PlantData{StorageLocation: "A01"})
		require.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		m := newTestMaterial(t)
		err := m.SetPlantData("PLANT_1", PlantData{
			StorageLocation:   "A01",
			UnrestrictedStock: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
	})
}

func TestMaterialAvailabilityAt(t *testing.T) {
	m, err := NewMaterial("MAT100", "Test Material", TypeRaw, "KG")
	require.NoError(t, err)
	require.NoError(t, m.SetPlantData("PLANT_1", PlantData{
		StorageLocation:   "A01",
		UnrestrictedStock: decimal.NewFromInt(1000),
	}))
	m.SetValuation(Valuation{
		StandardPrice: decimal.RequireFromString("10.00"),
		PriceUnit:     1,
		Currency:      "USD",
	})

	t.Run("returns view for configured plant", func(t *testing.T) {
		view, ok := m.AvailabilityAt("PLANT_1")
		require.True(t, ok)

		assert.Equal(t, "MAT100", view.MaterialID)
		assert.Equal(t, "PLANT_1", view.Plant)
		assert.Equal(t, "A01", view.StorageLocation)
		assert.True(t, view.UnrestrictedStock.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, "USD", view.Valuation.Currency)
	})

	t.Run("reports missing plant", func(t *testing.T) {
		_, ok := m.AvailabilityAt("PLANT_2")
		assert.False(t, ok)
	})

	t.Run("view is immune to later master edits", func(t *testing.T) {
		view, ok := m.AvailabilityAt("PLANT_1")
		require.True(t, ok)

		require.NoError(t, m.SetPlantData("PLANT_1", PlantData{
			StorageLocation:   "B99",
			UnrestrictedStock: decimal.NewFromInt(1),
		}))

		assert.Equal(t, "A01", view.StorageLocation)
		assert.True(t, view.UnrestrictedStock.Equal(decimal.NewFromInt(1000)))
	})
}

func TestMaterialClone(t *testing.T) {
	m, err := NewMaterial("MAT100", "Test Material", TypeFinished, "EA")
	require.NoError(t, err)
	require.NoError(t, m.SetPlantData("PLANT_1", PlantData{
		StorageLocation:   "A01",
		UnrestrictedStock: decimal.NewFromInt(500),
	}))

	clone := m.Clone()
	require.NoError(t, clone.SetPlantData("PLANT_1", PlantData{
		StorageLocation:   "C03",
		UnrestrictedStock: decimal.NewFromInt(7),
	}))

	original, ok := m.AvailabilityAt("PLANT_1")
	require.True(t, ok)
	assert.Equal(t, "A01", original.StorageLocation)
}

func TestType(t *testing.T) {
	assert.True(t, TypeRaw.IsValid())
	assert.True(t, TypeFinished.IsValid())
	assert.False(t, Type("BOGUS").IsValid())
	assert.Equal(t, "RAW", TypeRaw.String())
}
