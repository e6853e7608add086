package handler

import (
	"github.com/gin-gonic/gin"

	appprocurement "github.com/erp/mockerp/internal/application/procurement"
)

// ProcurementHandler handles procure-to-pay HTTP requests
type ProcurementHandler struct {
	BaseHandler
	service *appprocurement.Service
}

// NewProcurementHandler creates a new procurement handler
func NewProcurementHandler(service *appprocurement.Service) *ProcurementHandler {
	return &ProcurementHandler{service: service}
}

// RegisterRoutes registers procurement routes
func (h *ProcurementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requisitions := rg.Group("/purchase-requisitions")
	requisitions.POST("", h.CreateRequisition)
	requisitions.GET("", h.ListRequisitions)
	requisitions.GET("/:number", h.GetRequisition)

	orders := rg.Group("/purchase-orders")
	orders.POST("", h.CreateOrder)
	orders.GET("", h.ListOrders)
	orders.GET("/:number", h.GetOrder)

	documents := rg.Group("/documents")
	documents.GET("/:number/status", h.QueryStatus)
}

// CreateRequisition creates a purchase requisition
func (h *ProcurementHandler) CreateRequisition(c *gin.Context) {
	var req appprocurement.CreateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.CreateRequisition(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetRequisition returns the full requisition record
func (h *ProcurementHandler) GetRequisition(c *gin.Context) {
	result, err := h.service.GetRequisition(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListRequisitions returns all requisitions in creation order
func (h *ProcurementHandler) ListRequisitions(c *gin.Context) {
	result, err := h.service.ListRequisitions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateOrder creates a purchase order from a requisition
func (h *ProcurementHandler) CreateOrder(c *gin.Context) {
	var req appprocurement.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetOrder returns the full order record
func (h *ProcurementHandler) GetOrder(c *gin.Context) {
	result, err := h.service.GetOrder(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListOrders returns all orders in creation order
func (h *ProcurementHandler) ListOrders(c *gin.Context) {
	result, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// QueryStatus reports the status of a procure-to-pay document. The
// document type comes from the query string and is case-insensitive.
func (h *ProcurementHandler) QueryStatus(c *gin.Context) {
	req := appprocurement.StatusRequest{
		DocumentNumber: c.Param("number"),
		DocumentType:   c.Query("type"),
	}

	result, err := h.service.QueryStatus(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
