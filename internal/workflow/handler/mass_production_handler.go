package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-gonic/gin"
)

// MassProductionHandler serves the umbrella records.
type MassProductionHandler struct {
	svc *service.MassProductionService
}

func NewMassProductionHandler(svc *service.MassProductionService) *MassProductionHandler {
	return &MassProductionHandler{svc: svc}
}

func (h *MassProductionHandler) Create(c *gin.Context) {
	var input service.MassProductionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mp, err := h.svc.Create(c.Request.Context(), input, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, mp)
}

func (h *MassProductionHandler) Get(c *gin.Context) {
	mp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Mass production not found")
			return
		}
		InternalError(c, "Failed to get mass production", err)
		return
	}
	Success(c, mp)
}

func (h *MassProductionHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"search":     c.Query("search"),
		"status":     c.Query("status"),
		"customer":   c.Query("customer"),
		"sort_by":    c.Query("sort_by"),
		"sort_order": c.Query("sort_order"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "Failed to list mass productions", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *MassProductionHandler) Update(c *gin.Context) {
	var input service.MassProductionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mp, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Mass production not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, mp)
}

// AttachStage PUT /api/v1/mass-productions/:id/stages/:slot
func (h *MassProductionHandler) AttachStage(c *gin.Context) {
	var body struct {
		RefID string `json:"ref_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mp, err := h.svc.AttachStage(c.Request.Context(), c.Param("id"), c.Param("slot"), body.RefID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Mass production not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, mp)
}

func (h *MassProductionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Mass production not found")
			return
		}
		InternalError(c, "Failed to delete mass production", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}
