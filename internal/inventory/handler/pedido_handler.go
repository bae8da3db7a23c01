package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// PedidoHandler serves purchase orders.
type PedidoHandler struct {
	svc *service.PedidoService
}

func NewPedidoHandler(svc *service.PedidoService) *PedidoHandler {
	return &PedidoHandler{svc: svc}
}

func (h *PedidoHandler) Create(c *gin.Context) {
	var input service.PedidoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pedido, err := h.svc.Create(c.Request.Context(), input, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, pedido)
}

func (h *PedidoHandler) Get(c *gin.Context) {
	pedido, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Pedido not found")
			return
		}
		InternalError(c, "Failed to get pedido", err)
		return
	}
	Success(c, pedido)
}

func (h *PedidoHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"search":          c.Query("search"),
		"tipo":            c.Query("tipo"),
		"table_status_id": c.Query("table_status_id"),
		"recibido":        c.Query("recibido"),
		"sort_by":         c.Query("sort_by"),
		"sort_order":      c.Query("sort_order"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "Failed to list pedidos", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

func (h *PedidoHandler) Update(c *gin.Context) {
	var input service.PedidoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pedido, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Pedido not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, pedido)
}

// MarkReceived PUT /api/v1/pedidos/:id/received
func (h *PedidoHandler) MarkReceived(c *gin.Context) {
	pedido, err := h.svc.MarkReceived(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Pedido not found")
			return
		}
		InternalError(c, "Failed to mark pedido received", err)
		return
	}
	Success(c, pedido)
}

func (h *PedidoHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Pedido not found")
			return
		}
		InternalError(c, "Failed to delete pedido", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}
