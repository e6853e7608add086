package procurement

import "context"

// DocumentType identifies which collection a status query targets
type DocumentType string

const (
	DocumentTypeRequisition DocumentType = "PR"
	DocumentTypeOrder       DocumentType = "PO"
)

// IsValid checks if the document type is recognized
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeRequisition, DocumentTypeOrder:
		return true
	}
	return false
}

// String returns the string representation of DocumentType
func (t DocumentType) String() string {
	return string(t)
}

// DocumentRepository defines the interface for the procure-to-pay
// document store: two uniquely-keyed, creation-ordered collections with
// monotonic number generation.
//
// InsertOrder is the engine's atomicity boundary: assigning the order
// number, storing the order and flipping the referenced requisition to
// ORDERED must be indivisible so no reader ever observes an order whose
// source requisition still reports CREATED.
type DocumentRepository interface {
	// InsertRequisition assigns the next requisition number and stores the
	// record. The number is set on the entity before returning.
	InsertRequisition(ctx context.Context, pr *PurchaseRequisition) error

	// InsertOrder atomically assigns the next order number, stores the
	// order and marks the referenced requisition ORDERED. It fails with
	// ErrPRNotFound if the requisition is absent and ErrAlreadyOrdered if
	// it has already been ordered.
	InsertOrder(ctx context.Context, po *PurchaseOrder) error

	// FindRequisition returns a copy of the requisition with the given number
	FindRequisition(ctx context.Context, number string) (*PurchaseRequisition, error)

	// FindOrder returns a copy of the order with the given number
	FindOrder(ctx context.Context, number string) (*PurchaseOrder, error)

	// ListRequisitions returns copies of all requisitions in creation order
	ListRequisitions(ctx context.Context) ([]*PurchaseRequisition, error)

	// ListOrders returns copies of all orders in creation order
	ListOrders(ctx context.Context) ([]*PurchaseOrder, error)

	// Reset clears both collections and both number sequences
	Reset(ctx context.Context) error
}
