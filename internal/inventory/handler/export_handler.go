package handler

import (
	"github.com/aminebenfraj/novares-sub003/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves CSV and XLSX downloads of pedidos and materials.
type ExportHandler struct {
	svc *service.ExportService
}

func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

func exportFilters(c *gin.Context) map[string]string {
	return map[string]string{
		"tipo":     c.Query("tipo"),
		"recibido": c.Query("recibido"),
	}
}

// PedidosCSV GET /api/v1/exports/pedidos.csv
func (h *ExportHandler) PedidosCSV(c *gin.Context) {
	data, err := h.svc.PedidosCSV(c.Request.Context(), exportFilters(c))
	if err != nil {
		InternalError(c, "Failed to export pedidos", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pedidos.csv"`)
	c.Data(200, "text/csv", data)
}

// PedidosXLSX GET /api/v1/exports/pedidos.xlsx
func (h *ExportHandler) PedidosXLSX(c *gin.Context) {
	data, err := h.svc.PedidosXLSX(c.Request.Context(), exportFilters(c))
	if err != nil {
		InternalError(c, "Failed to export pedidos", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pedidos.xlsx"`)
	c.Data(200, xlsxContentType, data)
}

// CallsCSV GET /api/v1/exports/calls.csv
func (h *ExportHandler) CallsCSV(c *gin.Context) {
	data, err := h.svc.CallsCSV(c.Request.Context(), c.Query("status"))
	if err != nil {
		InternalError(c, "Failed to export calls", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="calls.csv"`)
	c.Data(200, "text/csv", data)
}

// CallsXLSX GET /api/v1/exports/calls.xlsx
func (h *ExportHandler) CallsXLSX(c *gin.Context) {
	data, err := h.svc.CallsXLSX(c.Request.Context(), c.Query("status"))
	if err != nil {
		InternalError(c, "Failed to export calls", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="calls.xlsx"`)
	c.Data(200, xlsxContentType, data)
}

// MaterialsCSV GET /api/v1/exports/materials.csv
func (h *ExportHandler) MaterialsCSV(c *gin.Context) {
	filters := map[string]string{
		"supplier_id": c.Query("supplier_id"),
		"category_id": c.Query("category_id"),
		"critical":    c.Query("critical"),
	}
	data, err := h.svc.MaterialsCSV(c.Request.Context(), filters)
	if err != nil {
		InternalError(c, "Failed to export materials", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="materials.csv"`)
	c.Data(200, "text/csv", data)
}

// MaterialsXLSX GET /api/v1/exports/materials.xlsx
func (h *ExportHandler) MaterialsXLSX(c *gin.Context) {
	filters := map[string]string{
		"supplier_id": c.Query("supplier_id"),
		"category_id": c.Query("category_id"),
		"critical":    c.Query("critical"),
	}
	data, err := h.svc.MaterialsXLSX(c.Request.Context(), filters)
	if err != nil {
		InternalError(c, "Failed to export materials", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="materials.xlsx"`)
	c.Data(200, xlsxContentType, data)
}
