package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-gonic/gin"
)

// ReadinessHandler serves readiness aggregates.
type ReadinessHandler struct {
	svc        *service.ReadinessService
	checklists *service.ChecklistService
}

func NewReadinessHandler(svc *service.ReadinessService, checklists *service.ChecklistService) *ReadinessHandler {
	return &ReadinessHandler{svc: svc, checklists: checklists}
}

func (h *ReadinessHandler) Create(c *gin.Context) {
	var body struct {
		Project string `json:"project"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	readiness, err := h.svc.Create(c.Request.Context(), body.Project)
	if err != nil {
		InternalError(c, "Failed to create readiness", err)
		return
	}
	Created(c, readiness)
}

func (h *ReadinessHandler) Get(c *gin.Context) {
	readiness, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Readiness not found")
			return
		}
		InternalError(c, "Failed to get readiness", err)
		return
	}
	Success(c, readiness)
}

func (h *ReadinessHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		InternalError(c, "Failed to list readinesses", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *ReadinessHandler) Update(c *gin.Context) {
	var body struct {
		Project string `json:"project"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	readiness, err := h.svc.Update(c.Request.Context(), c.Param("id"), body.Project)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Readiness not found")
			return
		}
		InternalError(c, "Failed to update readiness", err)
		return
	}
	Success(c, readiness)
}

func (h *ReadinessHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), h.checklists); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Readiness not found")
			return
		}
		InternalError(c, "Failed to delete readiness", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}
