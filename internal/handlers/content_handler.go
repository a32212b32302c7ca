package handlers

import (
	"net/http"

	"visualvibe_backend/internal/content"
	"visualvibe_backend/internal/logger"
	"visualvibe_backend/internal/services"
	"visualvibe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves one portfolio resource. The same handler type is
// instantiated eight times from the resource table; only the type parameter
// and the Resource entry differ.
type ContentHandler[T content.Item] struct {
	*BaseHandler
	res     content.Resource[T]
	service services.ContentService[T]
}

func NewContentHandler[T content.Item](base *BaseHandler, res content.Resource[T], service services.ContentService[T]) *ContentHandler[T] {
	return &ContentHandler[T]{
		BaseHandler: base,
		res:         res,
		service:     service,
	}
}

// RegisterRoutes mounts the reads on the public group and the mutations on
// the admin-gated group.
func (h *ContentHandler[T]) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/"+h.res.Name, h.List)
	public.GET("/"+h.res.Name+"/:id", h.Get)

	admin.POST("/"+h.res.Name, h.Create)
	admin.PUT("/"+h.res.Name+"/:id", h.Update)
	admin.DELETE("/"+h.res.Name+"/:id", h.Delete)
}

func (h *ContentHandler[T]) List(c *gin.Context) {
	db := h.GetDB(c)

	result, err := h.service.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ContentHandler[T]) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	item, err := h.service.Get(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind content payload", err,
			"resource", h.res.Name)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	db := h.GetDB(c)

	id, err := h.service.Create(db, &item)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": h.res.Label + " created",
	})
}

func (h *ContentHandler[T]) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind content payload", err,
			"resource", h.res.Name)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	db := h.GetDB(c)

	if err := h.service.Update(db, id, &item); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.res.Label + " updated"})
}

func (h *ContentHandler[T]) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.service.Delete(db, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.res.Label + " deleted"})
}
