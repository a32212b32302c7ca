package handlers

import (
	"net/http"

	"visualvibe_backend/internal/logger"
	"visualvibe_backend/internal/repositories"
	"visualvibe_backend/internal/services"
	"visualvibe_backend/internal/services/dto"
	"visualvibe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	*BaseHandler
	enquiryService services.EnquiryService
	uploadService  services.UploadService
}

func NewEnquiryHandler(base *BaseHandler, enquiryService services.EnquiryService, uploadService services.UploadService) *EnquiryHandler {
	return &EnquiryHandler{
		BaseHandler:    base,
		enquiryService: enquiryService,
		uploadService:  uploadService,
	}
}

// RegisterRoutes keeps the two submission paths public; everything else is
// admin moderation.
func (h *EnquiryHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/enquiries", h.Create)
	public.POST("/enquiries/submit", h.Submit)

	admin.GET("/enquiries", h.List)
	admin.GET("/enquiries/:id", h.Get)
	admin.PUT("/enquiries/:id", h.UpdateStatus)
	admin.DELETE("/enquiries/:id", h.Delete)
}

// Create is the JSON API submission path.
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req dto.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind enquiry payload", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	db := h.GetDB(c)

	id, err := h.enquiryService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Enquiry submitted successfully",
	})
}

// Submit is the direct multipart path used by the public contact form. An
// optional reference file is stored before the row is written; its stored
// path travels with the enquiry.
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var req dto.CreateEnquiryRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind enquiry form", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	if file, err := c.FormFile("reference_file"); err == nil && file != nil {
		path, err := h.uploadService.SaveEnquiryAttachment(c.Request.Context(), file)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		req.FilePath = path
	}

	db := h.GetDB(c)

	id, err := h.enquiryService.Submit(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Enquiry submitted successfully",
	})
}

func (h *EnquiryHandler) List(c *gin.Context) {
	filter := repositories.EnquiryFilter{
		Status:  c.Query("status"),
		Service: c.Query("service"),
		Search:  c.Query("search"),
	}

	db := h.GetDB(c)

	enquiries, err := h.enquiryService.List(db, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, enquiries)
}

func (h *EnquiryHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	enquiry, err := h.enquiryService.Get(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	db := h.GetDB(c)

	if err := h.enquiryService.UpdateStatus(db, id, req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enquiry status updated"})
}

func (h *EnquiryHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.enquiryService.Delete(db, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enquiry deleted"})
}
