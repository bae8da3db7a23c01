package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-gonic/gin"
)

// FeasibilityHandler serves feasibility studies.
type FeasibilityHandler struct {
	svc *service.FeasibilityService
}

func NewFeasibilityHandler(svc *service.FeasibilityService) *FeasibilityHandler {
	return &FeasibilityHandler{svc: svc}
}

func (h *FeasibilityHandler) Create(c *gin.Context) {
	var req service.CreateFeasibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, view)
}

func (h *FeasibilityHandler) Get(c *gin.Context) {
	view, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Feasibility not found")
			return
		}
		InternalError(c, "Failed to get feasibility", err)
		return
	}
	Success(c, view)
}

func (h *FeasibilityHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		InternalError(c, "Failed to list feasibilities", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *FeasibilityHandler) Update(c *gin.Context) {
	var req service.CreateFeasibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Feasibility not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, view)
}

func (h *FeasibilityHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Feasibility not found")
			return
		}
		InternalError(c, "Failed to delete feasibility", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}
