package handlers

import (
	"net/http"
	"time"

	"visualvibe_backend/internal/config"
	"visualvibe_backend/internal/logger"
	"visualvibe_backend/internal/services"
	"visualvibe_backend/internal/services/dto"
	"visualvibe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the single /auth endpoint the admin frontend drives
// with an action field. The session token lives in an HTTP-only cookie; the
// frontend never sees it.
type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cookieName  string
	sessionTTL  time.Duration
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookieName:  cfg.Session.CookieName,
		sessionTTL:  time.Duration(cfg.Session.TTLHours) * time.Hour,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth", h.Handle)
}

func (h *AuthHandler) Handle(c *gin.Context) {
	var req dto.AuthRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	switch req.Action {
	case "login":
		h.login(c, &req)
	case "logout":
		h.logout(c)
	case "check":
		h.check(c)
	default:
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid action"))
	}
}

func (h *AuthHandler) login(c *gin.Context, req *dto.AuthRequest) {
	if req.Username == "" || req.Password == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Username and password required"))
		return
	}

	db := h.GetDB(c)

	admin, token, err := h.authService.Login(db, req.Username, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "admin logged in", "admin_id", admin.ID, "username", admin.Username)

	c.SetCookie(h.cookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    admin,
	})
}

func (h *AuthHandler) logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookieName)

	db := h.GetDB(c)

	if err := h.authService.Logout(db, token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) check(c *gin.Context) {
	token, _ := c.Cookie(h.cookieName)

	db := h.GetDB(c)

	admin, ok := h.authService.Check(db, token)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          admin,
	})
}
