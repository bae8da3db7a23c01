package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// MachineHandler serves machines and the allocation endpoints rooted at
// a machine.
type MachineHandler struct {
	svc        *service.MachineService
	allocation *service.AllocationService
}

func NewMachineHandler(svc *service.MachineService, allocation *service.AllocationService) *MachineHandler {
	return &MachineHandler{svc: svc, allocation: allocation}
}

func (h *MachineHandler) Create(c *gin.Context) {
	var input service.MachineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	machine, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, machine)
}

func (h *MachineHandler) Get(c *gin.Context) {
	machine, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		InternalError(c, "Failed to get machine", err)
		return
	}
	Success(c, machine)
}

func (h *MachineHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("search"))
	if err != nil {
		InternalError(c, "Failed to list machines", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *MachineHandler) Update(c *gin.Context) {
	var input service.MachineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	machine, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, machine)
}

func (h *MachineHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		InternalError(c, "Failed to delete machine", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}

// Allocations GET /api/v1/machines/:id/allocations
func (h *MachineHandler) Allocations(c *gin.Context) {
	items, err := h.allocation.MachineAllocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		InternalError(c, "Failed to list allocations", err)
		return
	}
	Success(c, gin.H{"items": items})
}

// UpdateAllocation PUT /api/v1/machines/:id/allocations/:materialId
func (h *MachineHandler) UpdateAllocation(c *gin.Context) {
	var body struct {
		Stock   float64 `json:"stock"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mm, err := h.allocation.UpdateAllocation(c.Request.Context(),
		c.Param("id"), c.Param("materialId"), body.Stock, GetUserID(c), body.Comment)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "Allocation not found")
		case errors.Is(err, service.ErrInsufficientStock), errors.Is(err, service.ErrInvalidQuantity):
			Conflict(c, err.Error())
		default:
			InternalError(c, "Failed to update allocation", err)
		}
		return
	}
	Success(c, mm)
}

// ReleaseAllocation DELETE /api/v1/machines/:id/allocations/:materialId
func (h *MachineHandler) ReleaseAllocation(c *gin.Context) {
	err := h.allocation.ReleaseAllocation(c.Request.Context(),
		c.Param("id"), c.Param("materialId"), GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Allocation not found")
			return
		}
		InternalError(c, "Failed to release allocation", err)
		return
	}
	Success(c, gin.H{"released": true})
}
