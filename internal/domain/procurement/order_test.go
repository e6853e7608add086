package procurement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/mockerp/internal/domain/shared"
)

func numberedRequisition(t *testing.T) *PurchaseRequisition {
	t.Helper()
	pr, err := NewPurchaseRequisition("MAT001", decimal.NewFromInt(10), "2026-09-15", "PLANT_1", testSnapshot())
	require.NoError(t, err)
	pr.Number = "PR0000000001"
	return pr
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("copies material data from requisition", func(t *testing.T) {
		pr := numberedRequisition(t)

		po, err := NewPurchaseOrder(pr, "VENDOR001", "")
		require.NoError(t, err)

		assert.Empty(t, po.Number)
		assert.Equal(t, "PR0000000001", po.RequisitionNumber)
		assert.Equal(t, "VENDOR001", po.VendorID)
		assert.Equal(t, "MAT001", po.MaterialID)
		assert.True(t, po.Quantity.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, "PLANT_1", po.Plant)
		assert.Equal(t, OrderStatusCreated, po.Status)
	})

	t.Run("inherits delivery date from requisition", func(t *testing.T) {
		pr := numberedRequisition(t)

		po, err := NewPurchaseOrder(pr, "VENDOR001", "")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", po.DeliveryDate)
	})

	t.Run("override replaces delivery date", func(t *testing.T) {
		pr := numberedRequisition(t)

		po, err := NewPurchaseOrder(pr, "VENDOR001", "2026-10-01")
		require.NoError(t, err)
		assert.Equal(t, "2026-10-01", po.DeliveryDate)
	})

	t.Run("rejects nil requisition", func(t *testing.T) {
		_, err := NewPurchaseOrder(nil, "VENDOR001", "")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("rejects unnumbered requisition", func(t *testing.T) {
		pr, err := NewPurchaseRequisition("MAT001", decimal.NewFromInt(10), "2026-09-15", "PLANT_1", testSnapshot())
		require.NoError(t, err)

		_, err = NewPurchaseOrder(pr, "VENDOR001", "")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("rejects empty vendor", func(t *testing.T) {
		pr := numberedRequisition(t)
		_, err := NewPurchaseOrder(pr, "", "")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}
