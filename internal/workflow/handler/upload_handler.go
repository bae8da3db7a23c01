package handler

import (
	"errors"
	"io"

	"github.com/aminebenfraj/novares-sub003/internal/storage"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-gonic/gin"
)

// 50 MB
const maxUploadSize = 50 << 20

// UploadHandler stores sheet documents and links them to their owner:
// task evidence files, launch release documents and offer validation
// documents.
type UploadHandler struct {
	store      *storage.AttachmentStore
	checklists *service.ChecklistService
	offers     *service.OfferService
}

func NewUploadHandler(store *storage.AttachmentStore, checklists *service.ChecklistService, offers *service.OfferService) *UploadHandler {
	return &UploadHandler{store: store, checklists: checklists, offers: offers}
}

func (h *UploadHandler) put(c *gin.Context) (string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "Missing file: "+err.Error())
		return "", false
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		BadRequest(c, "File too large")
		return "", false
	}

	path, err := h.store.Put(c.Request.Context(), file, header.Filename, header.Size,
		header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, storage.ErrStoreUnavailable) {
			Error(c, 50300, "Attachment store is not configured")
			return "", false
		}
		InternalError(c, "Failed to store file", err)
		return "", false
	}
	return path, true
}

// UploadTaskFile POST /api/v1/tasks/:id/file
func (h *UploadHandler) UploadTaskFile(c *gin.Context) {
	path, ok := h.put(c)
	if !ok {
		return
	}

	if err := h.checklists.SetTaskFile(c.Request.Context(), c.Param("id"), path); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Task not found")
			return
		}
		InternalError(c, "Failed to link file", err)
		return
	}
	Success(c, gin.H{"file_path": path})
}

// UploadOkForLaunchFile POST /api/v1/ok-for-launch/:id/file
func (h *UploadHandler) UploadOkForLaunchFile(c *gin.Context) {
	path, ok := h.put(c)
	if !ok {
		return
	}

	if err := h.offers.SetOkForLaunchUpload(c.Request.Context(), c.Param("id"), path); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Ok-for-launch not found")
			return
		}
		InternalError(c, "Failed to link file", err)
		return
	}
	Success(c, gin.H{"upload_path": path})
}

// UploadValidationForOfferFile POST /api/v1/validation-for-offers/:id/file
func (h *UploadHandler) UploadValidationForOfferFile(c *gin.Context) {
	path, ok := h.put(c)
	if !ok {
		return
	}

	if err := h.offers.SetValidationForOfferUpload(c.Request.Context(), c.Param("id"), path); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Validation-for-offer not found")
			return
		}
		InternalError(c, "Failed to link file", err)
		return
	}
	Success(c, gin.H{"upload_path": path})
}

// Download GET /api/v1/files/*path
func (h *UploadHandler) Download(c *gin.Context) {
	objectName := c.Param("path")
	if len(objectName) > 0 && objectName[0] == '/' {
		objectName = objectName[1:]
	}
	if objectName == "" {
		BadRequest(c, "Missing file path")
		return
	}

	object, err := h.store.Get(c.Request.Context(), objectName)
	if err != nil {
		if errors.Is(err, storage.ErrStoreUnavailable) {
			Error(c, 50300, "Attachment store is not configured")
			return
		}
		InternalError(c, "Failed to fetch file", err)
		return
	}
	defer object.Close()

	c.Header("Content-Disposition", "attachment")
	c.Status(200)
	io.Copy(c.Writer, object)
}
