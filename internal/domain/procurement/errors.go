package procurement

import (
	"fmt"

	"github.com/erp/mockerp/internal/domain/shared"
)

// Error codes for procurement operations, namespaced per operation so
// callers can switch on the code without matching message strings. The
// external interface maps these to SAP-compatible wire codes.
const (
	CodePRMissingFields   = "PR_MISSING_FIELDS"
	CodePRMaterialInvalid = "PR_MATERIAL_INVALID"
	CodePRPlantNotFound   = "PR_PLANT_NOT_FOUND"
	CodePRInvalidQuantity = "PR_INVALID_QUANTITY"
	CodePRInternal        = "PR_INTERNAL"

	CodePOMissingFields  = "PO_MISSING_FIELDS"
	CodePONotFound       = "PO_PR_NOT_FOUND"
	CodePOAlreadyOrdered = "PO_ALREADY_ORDERED"
	CodePOVendorNotFound = "PO_VENDOR_NOT_FOUND"
	CodePOInternal       = "PO_INTERNAL"

	CodeDocInvalidType = "DOC_INVALID_TYPE"
	CodeDocNotFound    = "DOC_NOT_FOUND"
	CodeDocInternal    = "DOC_INTERNAL"
)

// ErrPRMissingFields reports every absent requisition field, not just the first
func ErrPRMissingFields(missing []string) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(CodePRMissingFields,
		"Missing required fields",
		map[string]any{"missing_fields": missing})
}

// ErrInvalidQuantity is returned for a zero or negative requisition quantity
func ErrInvalidQuantity() *shared.DomainError {
	return shared.NewDomainError(CodePRInvalidQuantity, "Quantity must be greater than zero")
}

// ErrPlantNotFound is returned when the requesting plant is not in the
// recognized-plant set.
func ErrPlantNotFound(plant string) *shared.DomainError {
	return shared.NewDomainError(CodePRPlantNotFound, fmt.Sprintf("Plant %s not found", plant))
}

// ErrMaterialInvalid wraps a material gateway failure under the PR-scoped
// error class. The gateway's specificity is deliberately collapsed to keep
// the requisition error surface small; the message carries the detail.
func ErrMaterialInvalid(gatewayMessage string) *shared.DomainError {
	return shared.NewDomainError(CodePRMaterialInvalid, gatewayMessage)
}

// ErrPOMissingFields reports every absent order field
func ErrPOMissingFields(missing []string) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(CodePOMissingFields,
		"Missing required fields",
		map[string]any{"missing_fields": missing})
}

// ErrPRNotFound is returned when the referenced requisition does not exist
func ErrPRNotFound(prNumber string) *shared.DomainError {
	return shared.NewDomainError(CodePONotFound, fmt.Sprintf("PR %s not found", prNumber))
}

// ErrVendorNotFound is returned when the vendor is not in the
// recognized-vendor set.
func ErrVendorNotFound(vendorID string) *shared.DomainError {
	return shared.NewDomainError(CodePOVendorNotFound, fmt.Sprintf("Vendor %s not found", vendorID))
}

// ErrAlreadyOrdered enforces the one-order-per-requisition invariant
func ErrAlreadyOrdered(prNumber string) *shared.DomainError {
	return shared.NewDomainError(CodePOAlreadyOrdered, fmt.Sprintf("PR %s is already ordered", prNumber))
}

// ErrInvalidDocumentType is returned for an unrecognized status-query document type
func ErrInvalidDocumentType(docType string) *shared.DomainError {
	return shared.NewDomainError(CodeDocInvalidType, fmt.Sprintf("Invalid document type: %s", docType))
}

// ErrDocumentNotFound is returned when the document number is absent from
// the relevant collection.
func ErrDocumentNotFound(number string) *shared.DomainError {
	return shared.NewDomainError(CodeDocNotFound, fmt.Sprintf("Document %s not found", number))
}
