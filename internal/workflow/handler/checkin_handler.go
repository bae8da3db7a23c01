package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-gonic/gin"
)

// CheckinHandler serves standalone sign-off sheets.
type CheckinHandler struct {
	svc *service.CheckinService
}

func NewCheckinHandler(svc *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{svc: svc}
}

func (h *CheckinHandler) Create(c *gin.Context) {
	var input service.CheckinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	checkin, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, checkin)
}

func (h *CheckinHandler) Get(c *gin.Context) {
	checkin, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Checkin not found")
			return
		}
		InternalError(c, "Failed to get checkin", err)
		return
	}
	Success(c, checkin)
}

func (h *CheckinHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		InternalError(c, "Failed to list checkins", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *CheckinHandler) Update(c *gin.Context) {
	var input service.CheckinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	checkin, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Checkin not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, checkin)
}

func (h *CheckinHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Checkin not found")
			return
		}
		InternalError(c, "Failed to delete checkin", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}
