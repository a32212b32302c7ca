package handlers

import (
	"net/http"

	"visualvibe_backend/internal/services"
	"visualvibe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard endpoint. The type query parameter
// exists for future panels; stats is the only one today.
type AdminHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewAdminHandler(base *BaseHandler, statsService services.StatsService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *AdminHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/admin", h.Dashboard)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	if c.DefaultQuery("type", "stats") != "stats" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request"))
		return
	}

	db := h.GetDB(c)

	stats, err := h.statsService.Dashboard(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
