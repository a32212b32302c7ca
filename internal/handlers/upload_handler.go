package handlers

import (
	"net/http"

	"visualvibe_backend/internal/services"
	"visualvibe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/upload", h.Upload)
}

// Upload relays an admin media file into the storage backend. The type form
// field selects the category directory; unknown categories land in general.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No file uploaded"))
		return
	}

	category := c.DefaultPostForm("type", "general")

	resp, err := h.uploadService.SaveMedia(c.Request.Context(), file, category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
