package procurement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/mockerp/internal/domain/material"
	"github.com/erp/mockerp/internal/domain/shared"
)

func testSnapshot() material.AvailabilityView {
	return material.AvailabilityView{
		MaterialID:        "MAT001",
		Plant:             "PLANT_1",
		Description:       "Raw Material A",
		BaseUnit:          "KG",
		StorageLocation:   "A01",
		UnrestrictedStock: decimal.NewFromInt(1000),
	}
}

func TestNewPurchaseRequisition(t *testing.T) {
	t.Run("creates requisition in CREATED status", func(t *testing.T) {
		pr, err := NewPurchaseRequisition("MAT001", decimal.NewFromInt(10), "2026-09-15", "PLANT_1", testSnapshot())
		require.NoError(t, err)

		assert.Empty(t, pr.Number)
		assert.Equal(t, RequisitionStatusCreated, pr.Status)
		assert.Equal(t, "MAT001", pr.MaterialID)
		assert.Equal(t, "PLANT_1", pr.Plant)
		assert.Equal(t, "MAT001", pr.MaterialSnapshot.MaterialID)
		assert.False(t, pr.CreatedAt.IsZero())
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		_, err := NewPurchaseRequisition("", decimal.NewFromInt(10), "2026-09-15", "PLANT_1", testSnapshot())
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewPurchaseRequisition("MAT001", decimal.Zero, "2026-09-15", "PLANT_1", testSnapshot())
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, CodePRInvalidQuantity, domainErr.Code)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewPurchaseRequisition("MAT001", decimal.NewFromInt(-5), "2026-09-15", "PLANT_1", testSnapshot())
		require.Error(t, err)
	})
}

func TestRequisitionMarkOrdered(t *testing.T) {
	t.Run("transition happens exactly once", func(t *testing.T) {
		pr, err := NewPurchaseRequisition("MAT001", decimal.NewFromInt(10), "2026-09-15", "PLANT_1", testSnapshot())
		require.NoError(t, err)
		pr.Number = "PR0000000001"

		require.NoError(t, pr.MarkOrdered())
		assert.True(t, pr.IsOrdered())
		assert.Equal(t, RequisitionStatusOrdered, pr.Status)

		err = pr.MarkOrdered()
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, CodePOAlreadyOrdered, domainErr.Code)
	})
}

func TestRequisitionStatusTransitions(t *testing.T) {
	assert.True(t, RequisitionStatusCreated.CanTransitionTo(RequisitionStatusOrdered))
	assert.False(t, RequisitionStatusOrdered.CanTransitionTo(RequisitionStatusCreated))
	assert.False(t, RequisitionStatusOrdered.CanTransitionTo(RequisitionStatusOrdered))

	assert.True(t, RequisitionStatusCreated.IsValid())
	assert.False(t, RequisitionStatus("SHIPPED").IsValid())
}

func TestDocumentType(t *testing.T) {
	assert.True(t, DocumentTypeRequisition.IsValid())
	assert.True(t, DocumentTypeOrder.IsValid())
	assert.False(t, DocumentType("INVOICE").IsValid())
	assert.False(t, DocumentType("pr").IsValid())
}
