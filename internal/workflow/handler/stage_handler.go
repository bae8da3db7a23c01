package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-gonic/gin"
)

// StageHandler serves every checklist stage kind through one set of
// routes parameterized on :kind.
type StageHandler struct {
	svc *service.ChecklistService
}

func NewStageHandler(svc *service.ChecklistService) *StageHandler {
	return &StageHandler{svc: svc}
}

func stageKind(c *gin.Context) (string, bool) {
	kind := c.Param("kind")
	if _, ok := entity.DefinitionFor(kind); !ok {
		NotFound(c, "Unknown stage kind: "+kind)
		return "", false
	}
	return kind, true
}

// Create POST /api/v1/stages/:kind
func (h *StageHandler) Create(c *gin.Context) {
	kind, ok := stageKind(c)
	if !ok {
		return
	}

	var input service.StageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	stage, err := h.svc.Create(c.Request.Context(), kind, input)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, stage)
}

// Get GET /api/v1/stages/:kind/:id
func (h *StageHandler) Get(c *gin.Context) {
	kind, ok := stageKind(c)
	if !ok {
		return
	}

	stage, err := h.svc.Get(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Stage not found")
			return
		}
		InternalError(c, "Failed to get stage", err)
		return
	}
	Success(c, stage)
}

// List GET /api/v1/stages/:kind
func (h *StageHandler) List(c *gin.Context) {
	kind, ok := stageKind(c)
	if !ok {
		return
	}

	page, pageSize := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), kind, page, pageSize)
	if err != nil {
		InternalError(c, "Failed to list stages", err)
		return
	}
	Success(c, gin.H{
		"items":      items,
		"pagination": NewPagination(page, pageSize, total),
	})
}

// Update PUT /api/v1/stages/:kind/:id
func (h *StageHandler) Update(c *gin.Context) {
	kind, ok := stageKind(c)
	if !ok {
		return
	}

	var input service.StageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	stage, err := h.svc.Update(c.Request.Context(), kind, c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Stage not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, stage)
}

// Delete DELETE /api/v1/stages/:kind/:id
func (h *StageHandler) Delete(c *gin.Context) {
	kind, ok := stageKind(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Stage not found")
			return
		}
		InternalError(c, "Failed to delete stage", err)
		return
	}
	Success(c, gin.H{"deleted": true})
}

// Kinds GET /api/v1/stages
func (h *StageHandler) Kinds(c *gin.Context) {
	type kindInfo struct {
		Kind     string   `json:"kind"`
		SideKind string   `json:"side_kind"`
		Fields   []string `json:"fields"`
	}
	// The readiness disciplines share these routes, so the listing
	// covers the whole registry, not just the mass-production stages.
	kinds := make([]string, 0, len(entity.StageKinds)+len(entity.ReadinessKinds))
	kinds = append(kinds, entity.StageKinds...)
	kinds = append(kinds, entity.ReadinessKinds...)

	items := make([]kindInfo, 0, len(kinds))
	for _, kind := range kinds {
		def, _ := entity.DefinitionFor(kind)
		items = append(items, kindInfo{Kind: def.Kind, SideKind: def.SideKind, Fields: def.Fields})
	}
	Success(c, gin.H{"items": items})
}
