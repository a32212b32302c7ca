package routes

import (
	"net/http"
	"time"

	"visualvibe_backend/internal/config"
	"visualvibe_backend/internal/handlers"
	"visualvibe_backend/internal/middleware"
	"visualvibe_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole HTTP surface. Public reads and enquiry
// submissions stay open; everything under the admin group passes the session
// gate before any side effect.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authService services.AuthService,
	cfg *config.Config,
) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	public := router.Group("/")
	admin := router.Group("/")
	admin.Use(middleware.AdminAuthMiddleware(authService, cfg.Session.CookieName))

	appHandlers.AuthHandler.RegisterRoutes(public)
	appHandlers.EnquiryHandler.RegisterRoutes(public, admin)
	appHandlers.AdminHandler.RegisterRoutes(admin)
	appHandlers.UploadHandler.RegisterRoutes(admin)

	appHandlers.Slides.RegisterRoutes(public, admin)
	appHandlers.Team.RegisterRoutes(public, admin)
	appHandlers.Websites.RegisterRoutes(public, admin)
	appHandlers.Logos.RegisterRoutes(public, admin)
	appHandlers.Graphics.RegisterRoutes(public, admin)
	appHandlers.Flyers.RegisterRoutes(public, admin)
	appHandlers.Uiux.RegisterRoutes(public, admin)
	appHandlers.Videos.RegisterRoutes(public, admin)
}
