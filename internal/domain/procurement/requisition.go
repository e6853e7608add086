package procurement

import (
	"time"

	"github.com/erp/mockerp/internal/domain/material"
	"github.com/erp/mockerp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RequisitionStatus represents the status of a purchase requisition
type RequisitionStatus string

const (
	RequisitionStatusCreated RequisitionStatus = "CREATED"
	RequisitionStatusOrdered RequisitionStatus = "ORDERED"
)

// IsValid checks if the status is a valid RequisitionStatus
func (s RequisitionStatus) IsValid() bool {
	switch s {
	case RequisitionStatusCreated, RequisitionStatusOrdered:
		return true
	}
	return false
}

// String returns the string representation of RequisitionStatus
func (s RequisitionStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s RequisitionStatus) CanTransitionTo(target RequisitionStatus) bool {
	// ORDERED is terminal; the only legal move is CREATED -> ORDERED.
	return s == RequisitionStatusCreated && target == RequisitionStatusOrdered
}

// PurchaseRequisition represents a purchase requisition, the first stage
// of the procure-to-pay lifecycle. The number is assigned by the document
// store on insert. MaterialSnapshot is a point-in-time copy of the
// availability data taken at creation; later master-data edits never
// retroactively alter a requisition.
type PurchaseRequisition struct {
	Number           string                    `json:"pr_number"`
	MaterialID       string                    `json:"material_id"`
	Quantity         decimal.Decimal           `json:"quantity"`
	DeliveryDate     string                    `json:"delivery_date"`
	Plant            string                    `json:"plant"`
	Status           RequisitionStatus         `json:"status"`
	CreatedAt        time.Time                 `json:"created_at"`
	MaterialSnapshot material.AvailabilityView `json:"material_snapshot"`
}

// NewPurchaseRequisition creates a requisition in CREATED status.
// Field presence is validated by the lifecycle engine beforehand; this
// constructor guards the structural invariants.
func NewPurchaseRequisition(materialID string, quantity decimal.Decimal, deliveryDate, plant string, snapshot material.AvailabilityView) (*PurchaseRequisition, error) {
	if materialID == "" || deliveryDate == "" || plant == "" {
		return nil, shared.ErrInvalidInput
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidQuantity()
	}

	return &PurchaseRequisition{
		MaterialID:       materialID,
		Quantity:         quantity,
		DeliveryDate:     deliveryDate,
		Plant:            plant,
		Status:           RequisitionStatusCreated,
		CreatedAt:        time.Now().UTC(),
		MaterialSnapshot: snapshot,
	}, nil
}

// MarkOrdered transitions the requisition to ORDERED. The transition
// happens at most once and is irreversible.
func (pr *PurchaseRequisition) MarkOrdered() error {
	if !pr.Status.CanTransitionTo(RequisitionStatusOrdered) {
		return ErrAlreadyOrdered(pr.Number)
	}
	pr.Status = RequisitionStatusOrdered
	return nil
}

// IsOrdered reports whether a purchase order has been created for this requisition
func (pr *PurchaseRequisition) IsOrdered() bool {
	return pr.Status == RequisitionStatusOrdered
}
