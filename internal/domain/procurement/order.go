package procurement

import (
	"time"

	"github.com/erp/mockerp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a purchase order
type OrderStatus string

// CREATED is the only reachable purchase order state in this engine;
// receiving, invoicing and payment are outside its scope.
const (
	OrderStatusCreated OrderStatus = "CREATED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusCreated
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// PurchaseOrder represents a vendor-facing purchase order created from
// exactly one purchase requisition. RequisitionNumber is a back-reference,
// not ownership; the requisition continues to exist independently.
type PurchaseOrder struct {
	Number            string          `json:"po_number"`
	RequisitionNumber string          `json:"pr_number"`
	VendorID          string          `json:"vendor_id"`
	MaterialID        string          `json:"material_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	DeliveryDate      string          `json:"delivery_date"`
	Plant             string          `json:"plant"`
	Status            OrderStatus     `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewPurchaseOrder creates a purchase order from a requisition. Material,
// quantity and plant are copied from the requisition; the delivery date is
// inherited unless an override is supplied.
func NewPurchaseOrder(pr *PurchaseRequisition, vendorID, deliveryDateOverride string) (*PurchaseOrder, error) {
	if pr == nil {
		return nil, shared.ErrInvalidInput
	}
	if pr.Number == "" || vendorID == "" {
		return nil, shared.ErrInvalidInput
	}

	deliveryDate := pr.DeliveryDate
	if deliveryDateOverride != "" {
		deliveryDate = deliveryDateOverride
	}

	return &PurchaseOrder{
		RequisitionNumber: pr.Number,
		VendorID:          vendorID,
		MaterialID:        pr.MaterialID,
		Quantity:          pr.Quantity,
		DeliveryDate:      deliveryDate,
		Plant:             pr.Plant,
		Status:            OrderStatusCreated,
		CreatedAt:         time.Now().UTC(),
	}, nil
}
