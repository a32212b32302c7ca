package middleware

import (
	"net/http"
	"strconv"

	"visualvibe_backend/internal/logger"
	"visualvibe_backend/internal/services"
	"visualvibe_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminAuthMiddleware gates the admin surface on a live session cookie.
// The verified identity is stored in the gin context and stamped into the
// request context for log correlation.
func AdminAuthMiddleware(authService services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		db := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)

		admin, ok := authService.Check(db, token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminUsername", admin.Username)
		c.Request = c.Request.WithContext(logger.WithAdminID(c.Request.Context(), strconv.FormatUint(uint64(admin.ID), 10)))
		c.Next()
	}
}

// GetAdminID returns the authenticated admin's id, or zero outside the
// gated surface.
func GetAdminID(c *gin.Context) uint {
	id, exists := c.Get("adminID")
	if !exists {
		return 0
	}

	adminID, ok := id.(uint)
	if !ok {
		return 0
	}

	return adminID
}
