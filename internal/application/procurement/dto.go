package procurement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp/mockerp/internal/domain/procurement"
)

// CreateRequisitionRequest creates a purchase requisition. Quantity is a
// pointer so an absent field is distinguishable from an explicit zero;
// zero is rejected as an invalid quantity, absence as a missing field.
type CreateRequisitionRequest struct {
	MaterialID   string           `json:"material_id"`
	Quantity     *decimal.Decimal `json:"quantity"`
	DeliveryDate string           `json:"delivery_date"`
	Plant        string           `json:"plant"`
}

// CreateRequisitionResponse confirms requisition creation
type CreateRequisitionResponse struct {
	PRNumber string `json:"pr_number"`
	Status   string `json:"status"`
}

// CreateOrderRequest creates a purchase order from a requisition.
// DeliveryDate is optional; when empty the order inherits the
// requisition's delivery date.
type CreateOrderRequest struct {
	PRNumber     string `json:"pr_number"`
	VendorID     string `json:"vendor_id"`
	DeliveryDate string `json:"delivery_date,omitempty"`
}

// CreateOrderResponse confirms order creation
type CreateOrderResponse struct {
	PONumber string `json:"po_number"`
	Status   string `json:"status"`
}

// StatusRequest asks for the status of a procure-to-pay document
type StatusRequest struct {
	DocumentNumber string `json:"document_number"`
	DocumentType   string `json:"document_type"`
}

// StatusResponse reports a document's current status
type StatusResponse struct {
	DocumentNumber string `json:"document_number"`
	DocumentType   string `json:"document_type"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

// ValuationView mirrors the snapshot's valuation on the wire
type ValuationView struct {
	StandardPrice decimal.Decimal `json:"standard_price"`
	PriceUnit     int             `json:"price_unit"`
	Currency      string          `json:"currency"`
}

// MaterialSnapshotView is the availability data captured when the
// requisition was created.
type MaterialSnapshotView struct {
	MaterialID        string          `json:"material_id"`
	Plant             string          `json:"plant"`
	Description       string          `json:"description"`
	BaseUnit          string          `json:"base_unit"`
	StorageLocation   string          `json:"storage_location"`
	UnrestrictedStock decimal.Decimal `json:"unrestricted_stock"`
	Valuation         ValuationView   `json:"valuation"`
}

// RequisitionView is the full requisition record
type RequisitionView struct {
	PRNumber         string               `json:"pr_number"`
	MaterialID       string               `json:"material_id"`
	Quantity         decimal.Decimal      `json:"quantity"`
	DeliveryDate     string               `json:"delivery_date"`
	Plant            string               `json:"plant"`
	Status           string               `json:"status"`
	CreatedAt        string               `json:"created_at"`
	MaterialSnapshot MaterialSnapshotView `json:"material_data"`
}

// OrderView is the full order record
type OrderView struct {
	PONumber     string          `json:"po_number"`
	PRNumber     string          `json:"pr_number"`
	VendorID     string          `json:"vendor_id"`
	MaterialID   string          `json:"material_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	DeliveryDate string          `json:"delivery_date"`
	Plant        string          `json:"plant"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z07:00")
}

func toRequisitionView(pr *procurement.PurchaseRequisition) *RequisitionView {
	return &RequisitionView{
		PRNumber:     pr.Number,
		MaterialID:   pr.MaterialID,
		Quantity:     pr.Quantity,
		DeliveryDate: pr.DeliveryDate,
		Plant:        pr.Plant,
		Status:       pr.Status.String(),
		CreatedAt:    formatTimestamp(pr.CreatedAt),
		MaterialSnapshot: MaterialSnapshotView{
			MaterialID:        pr.MaterialSnapshot.MaterialID,
			Plant:             pr.MaterialSnapshot.Plant,
			Description:       pr.MaterialSnapshot.Description,
			BaseUnit:          pr.MaterialSnapshot.BaseUnit,
			StorageLocation:   pr.MaterialSnapshot.StorageLocation,
			UnrestrictedStock: pr.MaterialSnapshot.UnrestrictedStock,
			Valuation: ValuationView{
				StandardPrice: pr.MaterialSnapshot.Valuation.StandardPrice,
				PriceUnit:     pr.MaterialSnapshot.Valuation.PriceUnit,
				Currency:      pr.MaterialSnapshot.Valuation.Currency,
			},
		},
	}
}

func toOrderView(po *procurement.PurchaseOrder) *OrderView {
	return &OrderView{
		PONumber:     po.Number,
		PRNumber:     po.RequisitionNumber,
		VendorID:     po.VendorID,
		MaterialID:   po.MaterialID,
		Quantity:     po.Quantity,
		DeliveryDate: po.DeliveryDate,
		Plant:        po.Plant,
		Status:       po.Status.String(),
		CreatedAt:    formatTimestamp(po.CreatedAt),
	}
}
