package handler

import (
	"github.com/gin-gonic/gin"

	appmaterial "github.com/erp/mockerp/internal/application/material"
)

// MaterialHandler handles material master HTTP requests
type MaterialHandler struct {
	BaseHandler
	service *appmaterial.Service
}

// NewMaterialHandler creates a new material handler
func NewMaterialHandler(service *appmaterial.Service) *MaterialHandler {
	return &MaterialHandler{service: service}
}

// RegisterRoutes registers material routes
func (h *MaterialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	materials := rg.Group("/materials")
	materials.POST("", h.Define)
	materials.GET("", h.List)
	materials.GET("/:id", h.Get)
	materials.GET("/:id/availability", h.CheckAvailability)
}

// CheckAvailability reports stock availability for a material at a plant
func (h *MaterialHandler) CheckAvailability(c *gin.Context) {
	req := appmaterial.AvailabilityRequest{
		MaterialID: c.Param("id"),
		Plant:      c.Query("plant"),
	}

	result, err := h.service.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Define creates a new material master record
func (h *MaterialHandler) Define(c *gin.Context) {
	var req appmaterial.DefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.DefineMaterial(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns the full master record for a material
func (h *MaterialHandler) Get(c *gin.Context) {
	result, err := h.service.GetMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns all material master records
func (h *MaterialHandler) List(c *gin.Context) {
	result, err := h.service.ListMaterials(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
