package dto

import "net/http"

// Wire error codes, SAP-compatible and namespaced per operation.
// Format: <OPERATION><NNN> with 999 reserved for internal failures.

// Purchase requisition error codes
const (
	ErrCodePRMissingFields   = "PR001"
	ErrCodePRMaterialInvalid = "PR002"
	ErrCodePRPlantNotFound   = "PR003"
	ErrCodePRInvalidQuantity = "PR004"
	ErrCodePRInternal        = "PR999"
)

// Purchase order error codes
const (
	ErrCodePOMissingFields  = "PO001"
	ErrCodePOPRNotFound     = "PO002"
	ErrCodePOAlreadyOrdered = "PO003"
	ErrCodePOVendorNotFound = "PO004"
	ErrCodePOInternal       = "PO999"
)

// Document status error codes
const (
	ErrCodeDocInvalidType = "DOC001"
	ErrCodeDocNotFound    = "DOC002"
	ErrCodeDocInternal    = "DOC999"
)

// Material availability error codes
const (
	ErrCodeMatAvailInvalidInput = "MAT_AVAIL_001"
	ErrCodeMatAvailNotFound     = "MAT_AVAIL_002"
	ErrCodeMatAvailNoPlant      = "MAT_AVAIL_003"
	ErrCodeMatAvailInternal     = "MAT_AVAIL_999"
)

// Material creation error codes
const (
	ErrCodeMatCreateMissingID     = "MAT_CREATE_001"
	ErrCodeMatCreateExists        = "MAT_CREATE_002"
	ErrCodeMatCreateMissingFields = "MAT_CREATE_003"
	ErrCodeMatCreateInvalidPlant  = "MAT_CREATE_004"
	ErrCodeMatCreateInternal      = "MAT_CREATE_999"
)

// Authentication error codes
const (
	ErrCodeAuthInvalidCredentials = "AUTH001"
	ErrCodeAuthInvalidToken       = "AUTH002"
	ErrCodeAuthInternal           = "AUTH999"
)

// General error codes
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// DomainErrorCodeMapping maps domain error codes to wire codes. Domain
// packages keep readable, operation-scoped codes; the wire carries the
// SAP-compatible forms integration clients match on.
var DomainErrorCodeMapping = map[string]string{
	// Procurement
	"PR_MISSING_FIELDS":   ErrCodePRMissingFields,
	"PR_MATERIAL_INVALID": ErrCodePRMaterialInvalid,
	"PR_PLANT_NOT_FOUND":  ErrCodePRPlantNotFound,
	"PR_INVALID_QUANTITY": ErrCodePRInvalidQuantity,
	"PR_INTERNAL":         ErrCodePRInternal,
	"PO_MISSING_FIELDS":   ErrCodePOMissingFields,
	"PO_PR_NOT_FOUND":     ErrCodePOPRNotFound,
	"PO_ALREADY_ORDERED":  ErrCodePOAlreadyOrdered,
	"PO_VENDOR_NOT_FOUND": ErrCodePOVendorNotFound,
	"PO_INTERNAL":         ErrCodePOInternal,
	"DOC_INVALID_TYPE":    ErrCodeDocInvalidType,
	"DOC_NOT_FOUND":       ErrCodeDocNotFound,
	"DOC_INTERNAL":        ErrCodeDocInternal,

	// Material master
	"MAT_INVALID_INPUT":        ErrCodeMatAvailInvalidInput,
	"MAT_NOT_FOUND":            ErrCodeMatAvailNotFound,
	"MAT_PLANT_NOT_CONFIGURED": ErrCodeMatAvailNoPlant,
	"MAT_MISSING_ID":           ErrCodeMatCreateMissingID,
	"MAT_ALREADY_EXISTS":       ErrCodeMatCreateExists,
	"MAT_MISSING_FIELDS":       ErrCodeMatCreateMissingFields,
	"MAT_INVALID_PLANT":        ErrCodeMatCreateInvalidPlant,
	"MAT_INTERNAL":             ErrCodeMatCreateInternal,

	// Authentication
	"AUTH_INVALID_CREDENTIALS": ErrCodeAuthInvalidCredentials,
	"AUTH_INVALID_TOKEN":       ErrCodeAuthInvalidToken,
	"AUTH_INTERNAL":            ErrCodeAuthInternal,
}

// NormalizeErrorCode converts a domain error code to its wire form.
// Unknown codes pass through unchanged.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := DomainErrorCodeMapping[code]; ok {
		return wireCode
	}
	return code
}

// ErrorCodeHTTPStatus maps wire error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Validation failures -> 400 Bad Request
	ErrCodePRMissingFields:        http.StatusBadRequest,
	ErrCodePRInvalidQuantity:      http.StatusBadRequest,
	ErrCodePOMissingFields:        http.StatusBadRequest,
	ErrCodeDocInvalidType:         http.StatusBadRequest,
	ErrCodeMatAvailInvalidInput:   http.StatusBadRequest,
	ErrCodeMatCreateMissingID:     http.StatusBadRequest,
	ErrCodeMatCreateMissingFields: http.StatusBadRequest,
	ErrCodeMatCreateInvalidPlant:  http.StatusBadRequest,
	ErrCodeBadRequest:             http.StatusBadRequest,

	// Unknown references -> 404 Not Found
	ErrCodePRPlantNotFound:  http.StatusNotFound,
	ErrCodePOPRNotFound:     http.StatusNotFound,
	ErrCodePOVendorNotFound: http.StatusNotFound,
	ErrCodeDocNotFound:      http.StatusNotFound,
	ErrCodeMatAvailNotFound: http.StatusNotFound,
	ErrCodeMatAvailNoPlant:  http.StatusNotFound,

	// State conflicts -> 409 Conflict
	ErrCodePOAlreadyOrdered: http.StatusConflict,
	ErrCodeMatCreateExists:  http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	ErrCodePRMaterialInvalid: http.StatusUnprocessableEntity,

	// Authentication -> 401 Unauthorized
	ErrCodeAuthInvalidCredentials: http.StatusUnauthorized,
	ErrCodeAuthInvalidToken:       http.StatusUnauthorized,

	// Internal failures -> 500 Internal Server Error
	ErrCodePRInternal:        http.StatusInternalServerError,
	ErrCodePOInternal:        http.StatusInternalServerError,
	ErrCodeDocInternal:       http.StatusInternalServerError,
	ErrCodeMatAvailInternal:  http.StatusInternalServerError,
	ErrCodeMatCreateInternal: http.StatusInternalServerError,
	ErrCodeAuthInternal:      http.StatusInternalServerError,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a wire error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
