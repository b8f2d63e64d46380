package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookhub/auth-service/internal/adapters/transport/http/dto"
	"github.com/cookhub/auth-service/internal/adapters/transport/http/middleware"
	"github.com/cookhub/auth-service/internal/app/auth/service"
	authErrors "github.com/cookhub/auth-service/internal/domain/auth/errors"
)

type Handler struct {
	svc service.Service
	log *zap.Logger
}

func NewHandler(svc service.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Register(r gin.IRouter) {
	auth := r.Group("/auth")
	auth.POST("/login", h.telegramLogin)
	auth.POST("/login/admin", h.adminLogin)
	auth.POST("/refresh", h.refresh)
	auth.POST("/logout", h.logout)
	auth.GET("/me", middleware.RequireAuth(h.svc), h.me)

	r.GET("/health", h.health)
}

func (h *Handler) telegramLogin(c *gin.Context) {
	var body dto.TelegramAuthDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("telegram_login", zap.Int64("tg_id", body.ID))

	pair, user, err := h.svc.TelegramLogin(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		UserID:       user.ID,
		TgID:         user.TgID,
		TgUsername:   user.TgUsername,
		PhoneNumber:  user.PhoneNumber,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    dto.TokenType,
		ExpiresIn:    int(pair.AccessTTL.Seconds()),
	})
}

func (h *Handler) adminLogin(c *gin.Context) {
	var body dto.AdminLoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("admin_login", zap.String("username", body.Username))

	pair, admin, err := h.svc.AdminLogin(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		UserID:       admin.UserID,
		Username:     admin.Username,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    dto.TokenType,
		ExpiresIn:    int(pair.AccessTTL.Seconds()),
	})
}

func (h *Handler) refresh(c *gin.Context) {
	var body dto.RefreshDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken: pair.AccessToken,
		TokenType:   dto.TokenType,
		ExpiresIn:   int(pair.AccessTTL.Seconds()),
	})
}

func (h *Handler) logout(c *gin.Context) {
	// bind errors are deliberately ignored: logout succeeds with an empty,
	// malformed or absent body
	var body dto.LogoutDTO
	_ = c.ShouldBindJSON(&body)

	h.log.Info("logout")

	if err := h.svc.Logout(c.Request.Context(), body); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LogoutResponse{Message: "Successfully logged out"})
}

func (h *Handler) me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	isAdmin, err := h.svc.IsAdmin(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		UserID:      user.ID,
		TgID:        user.TgID,
		TgUsername:  user.TgUsername,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		IsAdmin:     isAdmin,
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
}

// handleError maps the auth error taxonomy onto status codes. NotFound is
// reported as unauthorized: on auth routes it only ever means the token's
// principal is gone, and a distinct status would leak that.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case authErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case authErrors.IsInvalidPayload(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram authentication data"})
	case authErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
	case authErrors.IsInvalidToken(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case authErrors.IsNotFound(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case authErrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
