package procurement

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appmaterial "github.com/erp/mockerp/internal/application/material"
	"github.com/erp/mockerp/internal/domain/shared"
	"github.com/erp/mockerp/internal/infrastructure/config"
	"github.com/erp/mockerp/internal/infrastructure/persistence/memory"
)

func simulatorConfig() config.SimulatorConfig {
	return config.SimulatorConfig{
		ValidPlants:            []string{"PLANT_1"},
		ValidVendors:           []string{"VENDOR001"},
		DefaultStorageLocation: "A01",
		DefaultCurrency:        "USD",
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := memory.NewMaterialRepository()
	require.NoError(t, memory.SeedMaterials(context.Background(), repo))
	gateway := appmaterial.NewService(repo, simulatorConfig(), zap.NewNop())
	return NewService(memory.NewDocumentStore(), gateway, simulatorConfig(), zap.NewNop())
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr.Code
}

func qty(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func validRequisition() CreateRequisitionRequest {
	return CreateRequisitionRequest{
		MaterialID:   "MAT001",
		Quantity:     qty(10),
		DeliveryDate: "2026-09-15",
		Plant:        "PLANT_1",
	}
}

func TestCreateRequisition(t *testing.T) {
	ctx := context.Background()

	t.Run("creates requisition with sequential numbers", func(t *testing.T) {
		svc := newTestService(t)
		for i := 1; i <= 3; i++ {
			resp, err := svc.CreateRequisition(ctx, validRequisition())
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("PR%010d", i), resp.PRNumber)
			assert.Equal(t, "CREATED", resp.Status)
		}
	})

	t.Run("reports all missing fields", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.CreateRequisition(ctx, CreateRequisitionRequest{})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PR_MISSING_FIELDS", domainErr.Code)
		assert.ElementsMatch(t,
			[]string{"material_id", "quantity", "delivery_date", "plant"},
			domainErr.Details["missing_fields"])
	})

	t.Run("explicit zero quantity is invalid, not missing", func(t *testing.T) {
		svc := newTestService(t)
		req := validRequisition()
		req.Quantity = qty(0)
		_, err := svc.CreateRequisition(ctx, req)
		assert.Equal(t, "PR_INVALID_QUANTITY", domainCode(t, err))
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		svc := newTestService(t)
		req := validRequisition()
		req.Quantity = qty(-5)
		_, err := svc.CreateRequisition(ctx, req)
		assert.Equal(t, "PR_INVALID_QUANTITY", domainCode(t, err))
	})

	t.Run("plant check precedes material check", func(t *testing.T) {
		svc := newTestService(t)
		req := validRequisition()
		req.MaterialID = "MAT404"
		req.Plant = "PLANT_404"
		_, err := svc.CreateRequisition(ctx, req)
		assert.Equal(t, "PR_PLANT_NOT_FOUND", domainCode(t, err))
	})

	t.Run("unknown material surfaces gateway message", func(t *testing.T) {
		svc := newTestService(t)
		req := validRequisition()
		req.MaterialID = "MAT404"
		_, err := svc.CreateRequisition(ctx, req)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PR_MATERIAL_INVALID", domainErr.Code)
		assert.Equal(t, "Material MAT404 not found", domainErr.Message)
	})

	t.Run("snapshot captures availability at creation time", func(t *testing.T) {
		svc := newTestService(t)
		resp, err := svc.CreateRequisition(ctx, validRequisition())
		require.NoError(t, err)

		view, err := svc.GetRequisition(ctx, resp.PRNumber)
		require.NoError(t, err)
		assert.Equal(t, "MAT001", view.MaterialSnapshot.MaterialID)
		assert.Equal(t, "A01", view.MaterialSnapshot.StorageLocation)
		assert.True(t, view.MaterialSnapshot.UnrestrictedStock.Equal(decimal.RequireFromString("1000.0")))
	})

	t.Run("failed creations do not consume numbers", func(t *testing.T) {
		svc := newTestService(t)

		bad := validRequisition()
		bad.Quantity = qty(0)
		_, err := svc.CreateRequisition(ctx, bad)
		require.Error(t, err)

		resp, err := svc.CreateRequisition(ctx, validRequisition())
		require.NoError(t, err)
		assert.Equal(t, "PR0000000001", resp.PRNumber)
	})
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	createPR := func(t *testing.T, svc *Service) string {
		t.Helper()
		resp, err := svc.CreateRequisition(ctx, validRequisition())
		require.NoError(t, err)
		return resp.PRNumber
	}

	t.Run("creates order and flips requisition", func(t *testing.T) {
		svc := newTestService(t)
		prNumber := createPR(t, svc)

		resp, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: prNumber, VendorID: "VENDOR001"})
		require.NoError(t, err)
		assert.Equal(t, "PO0000000001", resp.PONumber)
		assert.Equal(t, "CREATED", resp.Status)

		pr, err := svc.GetRequisition(ctx, prNumber)
		require.NoError(t, err)
		assert.Equal(t, "ORDERED", pr.Status)
	})

	t.Run("order copies material data and inherits delivery date", func(t *testing.T) {
		svc := newTestService(t)
		prNumber := createPR(t, svc)

		resp, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: prNumber, VendorID: "VENDOR001"})
		require.NoError(t, err)

		po, err := svc.GetOrder(ctx, resp.PONumber)
		require.NoError(t, err)
		assert.Equal(t, "MAT001", po.MaterialID)
		assert.True(t, po.Quantity.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, "PLANT_1", po.Plant)
		assert.Equal(t, "2026-09-15", po.DeliveryDate)
	})

	t.Run("explicit delivery date overrides requisition", func(t *testing.T) {
		svc := newTestService(t)
		prNumber := createPR(t, svc)

		resp, err := svc.CreateOrder(ctx, CreateOrderRequest{
			PRNumber:     prNumber,
			VendorID:     "VENDOR001",
			DeliveryDate: "2026-10-01",
		})
		require.NoError(t, err)

		po, err := svc.GetOrder(ctx, resp.PONumber)
		require.NoError(t, err)
		assert.Equal(t, "2026-10-01", po.DeliveryDate)
	})

	t.Run("reports all missing fields", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.CreateOrder(ctx, CreateOrderRequest{})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PO_MISSING_FIELDS", domainErr.Code)
		assert.ElementsMatch(t, []string{"pr_number", "vendor_id"}, domainErr.Details["missing_fields"])
	})

	t.Run("requisition check precedes vendor check", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: "PR0000009999", VendorID: "VENDOR404"})
		assert.Equal(t, "PO_PR_NOT_FOUND", domainCode(t, err))
	})

	t.Run("unknown vendor", func(t *testing.T) {
		svc := newTestService(t)
		prNumber := createPR(t, svc)
		_, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: prNumber, VendorID: "VENDOR404"})
		assert.Equal(t, "PO_VENDOR_NOT_FOUND", domainCode(t, err))
	})

	t.Run("second order is rejected regardless of vendor validity", func(t *testing.T) {
		svc := newTestService(t)
		prNumber := createPR(t, svc)

		_, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: prNumber, VendorID: "VENDOR001"})
		require.NoError(t, err)

		_, err = svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: prNumber, VendorID: "VENDOR001"})
		assert.Equal(t, "PO_ALREADY_ORDERED", domainCode(t, err))

		// Invalid vendor reports the vendor error first; ordering of checks
		// is vendor before status.
		_, err = svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: prNumber, VendorID: "VENDOR404"})
		assert.Equal(t, "PO_VENDOR_NOT_FOUND", domainCode(t, err))
	})

	t.Run("failed order attempts do not consume numbers", func(t *testing.T) {
		svc := newTestService(t)
		first := createPR(t, svc)
		second := createPR(t, svc)

		_, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: first, VendorID: "VENDOR404"})
		require.Error(t, err)

		resp, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: second, VendorID: "VENDOR001"})
		require.NoError(t, err)
		assert.Equal(t, "PO0000000001", resp.PONumber)
	})
}

func TestQueryStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("reports requisition status", func(t *testing.T) {
		svc := newTestService(t)
		created, err := svc.CreateRequisition(ctx, validRequisition())
		require.NoError(t, err)

		status, err := svc.QueryStatus(ctx, StatusRequest{DocumentNumber: created.PRNumber, DocumentType: "PR"})
		require.NoError(t, err)
		assert.Equal(t, created.PRNumber, status.DocumentNumber)
		assert.Equal(t, "PR", status.DocumentType)
		assert.Equal(t, "CREATED", status.Status)
		assert.NotEmpty(t, status.CreatedAt)
	})

	t.Run("document type is case-insensitive", func(t *testing.T) {
		svc := newTestService(t)
		created, err := svc.CreateRequisition(ctx, validRequisition())
		require.NoError(t, err)

		for _, docType := range []string{"pr", "Pr", "pR"} {
			status, err := svc.QueryStatus(ctx, StatusRequest{DocumentNumber: created.PRNumber, DocumentType: docType})
			require.NoError(t, err)
			assert.Equal(t, "PR", status.DocumentType)
		}
	})

	t.Run("reports order status", func(t *testing.T) {
		svc := newTestService(t)
		created, err := svc.CreateRequisition(ctx, validRequisition())
		require.NoError(t, err)
		order, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: created.PRNumber, VendorID: "VENDOR001"})
		require.NoError(t, err)

		status, err := svc.QueryStatus(ctx, StatusRequest{DocumentNumber: order.PONumber, DocumentType: "PO"})
		require.NoError(t, err)
		assert.Equal(t, "CREATED", status.Status)
	})

	t.Run("rejects unrecognized document type", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.QueryStatus(ctx, StatusRequest{DocumentNumber: "PR0000000001", DocumentType: "INVOICE"})
		assert.Equal(t, "DOC_INVALID_TYPE", domainCode(t, err))
	})

	t.Run("unknown document number", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.QueryStatus(ctx, StatusRequest{DocumentNumber: "PR0000000404", DocumentType: "PR"})
		assert.Equal(t, "DOC_NOT_FOUND", domainCode(t, err))
	})

	t.Run("a PR number is not found in the PO collection", func(t *testing.T) {
		svc := newTestService(t)
		created, err := svc.CreateRequisition(ctx, validRequisition())
		require.NoError(t, err)

		_, err = svc.QueryStatus(ctx, StatusRequest{DocumentNumber: created.PRNumber, DocumentType: "PO"})
		assert.Equal(t, "DOC_NOT_FOUND", domainCode(t, err))
	})

	t.Run("repeated queries are idempotent", func(t *testing.T) {
		svc := newTestService(t)
		created, err := svc.CreateRequisition(ctx, validRequisition())
		require.NoError(t, err)

		first, err := svc.QueryStatus(ctx, StatusRequest{DocumentNumber: created.PRNumber, DocumentType: "PR"})
		require.NoError(t, err)
		second, err := svc.QueryStatus(ctx, StatusRequest{DocumentNumber: created.PRNumber, DocumentType: "PR"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestPartialOrderingAcrossDocuments(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	prNumbers := make([]string, 0, 3)
	for _, quantity := range []int64{100, 200, 300} {
		req := validRequisition()
		req.Quantity = qty(quantity)
		resp, err := svc.CreateRequisition(ctx, req)
		require.NoError(t, err)
		prNumbers = append(prNumbers, resp.PRNumber)
	}

	// Order the first two requisitions; the third stays untouched.
	poNumbers := make([]string, 0, 2)
	for _, prNumber := range prNumbers[:2] {
		resp, err := svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: prNumber, VendorID: "VENDOR001"})
		require.NoError(t, err)
		poNumbers = append(poNumbers, resp.PONumber)
	}

	for i, prNumber := range prNumbers[:2] {
		view, err := svc.GetRequisition(ctx, prNumber)
		require.NoError(t, err)
		assert.Equal(t, "ORDERED", view.Status, "PR %s", prNumber)

		order, err := svc.GetOrder(ctx, poNumbers[i])
		require.NoError(t, err)
		assert.Equal(t, prNumber, order.PRNumber)
		assert.Equal(t, "VENDOR001", order.VendorID)
	}

	third, err := svc.GetRequisition(ctx, prNumbers[2])
	require.NoError(t, err)
	assert.Equal(t, "CREATED", third.Status)
	assert.True(t, third.Quantity.Equal(decimal.NewFromInt(300)))

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, prNumbers[0], orders[0].PRNumber)
	assert.Equal(t, prNumbers[1], orders[1].PRNumber)

	requisitions, err := svc.ListRequisitions(ctx)
	require.NoError(t, err)
	assert.Len(t, requisitions, 3)
}

func TestSnapshotImmunity(t *testing.T) {
	ctx := context.Background()

	repo := memory.NewMaterialRepository()
	require.NoError(t, memory.SeedMaterials(ctx, repo))
	gateway := appmaterial.NewService(repo, simulatorConfig(), zap.NewNop())
	svc := NewService(memory.NewDocumentStore(), gateway, simulatorConfig(), zap.NewNop())

	created, err := svc.CreateRequisition(ctx, validRequisition())
	require.NoError(t, err)

	// A later definition of a new material must not disturb an existing
	// requisition's snapshot.
	_, err = gateway.DefineMaterial(ctx, appmaterial.DefineRequest{
		MaterialID:  "MAT200",
		Description: "Later Material",
		Type:        "RAW",
		BaseUnit:    "KG",
	})
	require.NoError(t, err)

	view, err := svc.GetRequisition(ctx, created.PRNumber)
	require.NoError(t, err)
	assert.Equal(t, "Raw Material A", view.MaterialSnapshot.Description)
	assert.True(t, view.MaterialSnapshot.UnrestrictedStock.Equal(decimal.RequireFromString("1000.0")))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateRequisition(ctx, validRequisition())
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, CreateOrderRequest{PRNumber: created.PRNumber, VendorID: "VENDOR001"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))

	requisitions, err := svc.ListRequisitions(ctx)
	require.NoError(t, err)
	assert.Empty(t, requisitions)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// Numbering restarts after reset
	again, err := svc.CreateRequisition(ctx, validRequisition())
	require.NoError(t, err)
	assert.Equal(t, "PR0000000001", again.PRNumber)
}
