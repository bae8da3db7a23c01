package handler

import (
	"strconv"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the inventory-side handlers for route registration.
type Handlers struct {
	Material *MaterialHandler
	Machine  *MachineHandler
	Pedido   *PedidoHandler
	Call     *CallHandler
	Export   *ExportHandler
	Master   *MasterHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Material: NewMaterialHandler(svc.Material, svc.Allocation),
		Machine:  NewMachineHandler(svc.Machine, svc.Allocation),
		Pedido:   NewPedidoHandler(svc.Pedido),
		Call:     NewCallHandler(svc.Call),
		Export:   NewExportHandler(svc.Export),
		Master:   NewMasterHandler(svc.Master),
	}
}

// Response is the envelope of every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination is the list-response page block.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func NewPagination(page, pageSize int, total int64) *Pagination {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      int(total),
		TotalPages: totalPages,
	}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

// InternalError answers with a generic message only. The raw error is
// attached to the gin context so the request logger records it; it never
// reaches the response body.
func InternalError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	Error(c, 50000, message)
}

// GetUserID reads the authenticated user's id off the context.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetPagination reads page/page_size with sane bounds.
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}
