package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// MaterialHandler serves materials and the allocation endpoints rooted
// at a material.
type MaterialHandler struct {
	svc        *service.MaterialService
	allocation *service.AllocationService
}

func NewMaterialHandler(svc *service.MaterialService, allocation *service.AllocationService) *MaterialHandler {
	return &MaterialHandler{svc: svc, allocation: allocation}
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var input service.MaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	material, err := h.svc.Create(c.Request.Context(), input, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, material)
}

func (h *MaterialHandler) Get(c *gin.Context) {
	material, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Material not found")
			return
		}
		InternalError(c, "Failed to get material", err)
		return
	}
	Success(c, material)
}

func (h *MaterialHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"search":      c.Query("search"),
		"supplier_id": c.Query("supplier_id"),
		"category_id": c.Query("category_id"),
		"critical":    c.Query("critical"),
		"low_stock":   c.Query("low_stock"),
		"sort_by":     c.Query("sort_by"),
		"sort_order":  c.Query("sort_order"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "Failed to list materials", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *MaterialHandler) Update(c *gin.Context) {
	var input service.MaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	material, err := h.svc.Update(c.Request.Context(), c.Param("id"), input, GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Material not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, material)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Material not found")
			return
		}
		InternalError(c, "Failed to delete material", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}

// Allocate POST /api/v1/materials/:id/allocations
func (h *MaterialHandler) Allocate(c *gin.Context) {
	var body struct {
		Allocations []service.AllocationItem `json:"allocations" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	material, err := h.allocation.AllocateStock(c.Request.Context(), c.Param("id"), body.Allocations, GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, err.Error())
		case errors.Is(err, service.ErrInsufficientStock), errors.Is(err, service.ErrInvalidQuantity):
			Conflict(c, err.Error())
		default:
			BadRequest(c, err.Error())
		}
		return
	}
	Success(c, material)
}

// Allocations GET /api/v1/materials/:id/allocations
func (h *MaterialHandler) Allocations(c *gin.Context) {
	items, err := h.allocation.MaterialAllocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Material not found")
			return
		}
		InternalError(c, "Failed to list allocations", err)
		return
	}
	Success(c, gin.H{"items": items})
}
