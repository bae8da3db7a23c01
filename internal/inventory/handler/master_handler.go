package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// MasterHandler serves the small master-data tables.
type MasterHandler struct {
	svc *service.MasterService
}

func NewMasterHandler(svc *service.MasterService) *MasterHandler {
	return &MasterHandler{svc: svc}
}

func (h *MasterHandler) ListSuppliers(c *gin.Context) {
	items, err := h.svc.ListSuppliers(c.Request.Context())
	if err != nil {
		InternalError(c, "Failed to list suppliers", err)
		return
	}
	Success(c, gin.H{"items": items})
}

func (h *MasterHandler) CreateSupplier(c *gin.Context) {
	var input entity.Supplier
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.CreateSupplier(c.Request.Context(), &input)
	if err != nil {
		InternalError(c, "Failed to create supplier", err)
		return
	}
	Created(c, item)
}

func (h *MasterHandler) UpdateSupplier(c *gin.Context) {
	var input entity.Supplier
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.UpdateSupplier(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Supplier not found")
			return
		}
		InternalError(c, "Failed to update supplier", err)
		return
	}
	Success(c, item)
}

func (h *MasterHandler) DeleteSupplier(c *gin.Context) {
	if err := h.svc.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Supplier not found")
			return
		}
		InternalError(c, "Failed to delete supplier", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}

func (h *MasterHandler) ListLocations(c *gin.Context) {
	items, err := h.svc.ListLocations(c.Request.Context())
	if err != nil {
		InternalError(c, "Failed to list locations", err)
		return
	}
	Success(c, gin.H{"items": items})
}

func (h *MasterHandler) CreateLocation(c *gin.Context) {
	var input entity.Location
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.CreateLocation(c.Request.Context(), &input)
	if err != nil {
		InternalError(c, "Failed to create location", err)
		return
	}
	Created(c, item)
}

func (h *MasterHandler) UpdateLocation(c *gin.Context) {
	var input entity.Location
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.UpdateLocation(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Location not found")
			return
		}
		InternalError(c, "Failed to update location", err)
		return
	}
	Success(c, item)
}

func (h *MasterHandler) DeleteLocation(c *gin.Context) {
	if err := h.svc.DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Location not found")
			return
		}
		InternalError(c, "Failed to delete location", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}

func (h *MasterHandler) ListCategories(c *gin.Context) {
	items, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		InternalError(c, "Failed to list categories", err)
		return
	}
	Success(c, gin.H{"items": items})
}

func (h *MasterHandler) CreateCategory(c *gin.Context) {
	var input entity.Category
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		InternalError(c, "Failed to create category", err)
		return
	}
	Created(c, item)
}

func (h *MasterHandler) UpdateCategory(c *gin.Context) {
	var input entity.Category
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.UpdateCategory(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Category not found")
			return
		}
		InternalError(c, "Failed to update category", err)
		return
	}
	Success(c, item)
}

func (h *MasterHandler) DeleteCategory(c *gin.Context) {
	if err := h.svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Category not found")
			return
		}
		InternalError(c, "Failed to delete category", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}

func (h *MasterHandler) ListSolicitantes(c *gin.Context) {
	items, err := h.svc.ListSolicitantes(c.Request.Context())
	if err != nil {
		InternalError(c, "Failed to list solicitantes", err)
		return
	}
	Success(c, gin.H{"items": items})
}

func (h *MasterHandler) CreateSolicitante(c *gin.Context) {
	var input entity.Solicitante
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.CreateSolicitante(c.Request.Context(), &input)
	if err != nil {
		InternalError(c, "Failed to create solicitante", err)
		return
	}
	Created(c, item)
}

func (h *MasterHandler) UpdateSolicitante(c *gin.Context) {
	var input entity.Solicitante
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.UpdateSolicitante(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Solicitante not found")
			return
		}
		InternalError(c, "Failed to update solicitante", err)
		return
	}
	Success(c, item)
}

func (h *MasterHandler) DeleteSolicitante(c *gin.Context) {
	if err := h.svc.DeleteSolicitante(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Solicitante not found")
			return
		}
		InternalError(c, "Failed to delete solicitante", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}

func (h *MasterHandler) ListTableStatuses(c *gin.Context) {
	items, err := h.svc.ListTableStatuses(c.Request.Context())
	if err != nil {
		InternalError(c, "Failed to list table statuses", err)
		return
	}
	Success(c, gin.H{"items": items})
}

func (h *MasterHandler) CreateTableStatus(c *gin.Context) {
	var input entity.TableStatus
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.CreateTableStatus(c.Request.Context(), &input)
	if err != nil {
		InternalError(c, "Failed to create table status", err)
		return
	}
	Created(c, item)
}

func (h *MasterHandler) UpdateTableStatus(c *gin.Context) {
	var input entity.TableStatus
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.UpdateTableStatus(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Table status not found")
			return
		}
		InternalError(c, "Failed to update table status", err)
		return
	}
	Success(c, item)
}

func (h *MasterHandler) DeleteTableStatus(c *gin.Context) {
	if err := h.svc.DeleteTableStatus(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Table status not found")
			return
		}
		InternalError(c, "Failed to delete table status", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}
