package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-gonic/gin"
)

// OfferHandler serves ok-for-launch and validation-for-offer sheets.
type OfferHandler struct {
	svc *service.OfferService
}

func NewOfferHandler(svc *service.OfferService) *OfferHandler {
	return &OfferHandler{svc: svc}
}

func (h *OfferHandler) CreateOkForLaunch(c *gin.Context) {
	var input service.OkForLaunchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ofl, err := h.svc.CreateOkForLaunch(c.Request.Context(), input)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, ofl)
}

func (h *OfferHandler) GetOkForLaunch(c *gin.Context) {
	ofl, err := h.svc.GetOkForLaunch(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Ok-for-launch not found")
			return
		}
		InternalError(c, "Failed to get ok-for-launch", err)
		return
	}
	Success(c, ofl)
}

func (h *OfferHandler) ListOkForLaunch(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListOkForLaunch(c.Request.Context(), page, pageSize)
	if err != nil {
		InternalError(c, "Failed to list ok-for-launches", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *OfferHandler) UpdateOkForLaunch(c *gin.Context) {
	var input service.OkForLaunchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ofl, err := h.svc.UpdateOkForLaunch(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Ok-for-launch not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, ofl)
}

func (h *OfferHandler) DeleteOkForLaunch(c *gin.Context) {
	if err := h.svc.DeleteOkForLaunch(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Ok-for-launch not found")
			return
		}
		InternalError(c, "Failed to delete ok-for-launch", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}

func (h *OfferHandler) CreateValidationForOffer(c *gin.Context) {
	var input service.ValidationForOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	vfo, err := h.svc.CreateValidationForOffer(c.Request.Context(), input)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, vfo)
}

func (h *OfferHandler) GetValidationForOffer(c *gin.Context) {
	vfo, err := h.svc.GetValidationForOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Validation-for-offer not found")
			return
		}
		InternalError(c, "Failed to get validation-for-offer", err)
		return
	}
	Success(c, vfo)
}

func (h *OfferHandler) ListValidationForOffer(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListValidationForOffer(c.Request.Context(), page, pageSize)
	if err != nil {
		InternalError(c, "Failed to list validation-for-offers", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *OfferHandler) UpdateValidationForOffer(c *gin.Context) {
	var input service.ValidationForOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	vfo, err := h.svc.UpdateValidationForOffer(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Validation-for-offer not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, vfo)
}

func (h *OfferHandler) DeleteValidationForOffer(c *gin.Context) {
	if err := h.svc.DeleteValidationForOffer(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Validation-for-offer not found")
			return
		}
		InternalError(c, "Failed to delete validation-for-offer", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}
