package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// CallHandler serves material call-offs.
type CallHandler struct {
	svc *service.CallService
}

func NewCallHandler(svc *service.CallService) *CallHandler {
	return &CallHandler{svc: svc}
}

func (h *CallHandler) Create(c *gin.Context) {
	var input service.CallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	call, err := h.svc.Create(c.Request.Context(), input, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, call)
}

func (h *CallHandler) Get(c *gin.Context) {
	call, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Call not found")
			return
		}
		InternalError(c, "Failed to get call", err)
		return
	}
	Success(c, call)
}

func (h *CallHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("status"))
	if err != nil {
		InternalError(c, "Failed to list calls", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

// Complete PUT /api/v1/calls/:id/complete
func (h *CallHandler) Complete(c *gin.Context) {
	call, err := h.svc.Complete(c.Request.Context(), c.Param("id"), GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Call not found")
			return
		}
		Conflict(c, err.Error())
		return
	}
	Success(c, call)
}

func (h *CallHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Call not found")
			return
		}
		InternalError(c, "Failed to delete call", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}
