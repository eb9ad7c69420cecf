package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/config"
	"github.com/jasri-space/core/internal/middleware"
	"github.com/jasri-space/core/internal/pkg/jwt"
	"github.com/jasri-space/core/internal/pkg/response"
)

const cookieMaxAge = 24 * 60 * 60

type Handler struct {
	svc *Service
	cfg *config.AppConfig
}

func NewHandler(svc *Service, cfg *config.AppConfig) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

func (h *Handler) RegisterRoutes(r gin.IRouter, authMW gin.HandlerFunc) {
	g := r.Group("/auth")

	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/me", h.me)
	g.POST("/register", h.register)
	g.POST("/change-password", authMW, h.changePassword)
	g.POST("/forgot-password", h.forgotPassword)
	g.POST("/reset-password", h.resetPassword)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", !h.cfg.IsDev(), true)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, id, err := h.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		response.InternalError(c, err)
		return
	}
	h.setSessionCookie(c, token, cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in",
		"user":    gin.H{"username": id.Username},
	})
}

// POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// GET /auth/me — always 200; reports whether the session cookie is valid.
func (h *Handler) me(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	claims, err := jwt.Parse(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          gin.H{"username": claims.Username},
	})
}

// POST /auth/register — bootstrap only, refused once an admin account exists.
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errAdminExists):
			response.Forbidden(c, "Admin account already exists")
		case errors.Is(err, errPasswordTooShort):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, gin.H{"id": u.ID, "username": u.Username})
}

// POST /auth/change-password
func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	userID := middleware.CurrentUserID(c)
	if err := h.svc.ChangePassword(userID, dto.CurrentPassword, dto.NewPassword); err != nil {
		switch {
		case errors.Is(err, errEnvBackedAccount), errors.Is(err, errPasswordTooShort):
			response.BadRequest(c, err.Error())
		case errors.Is(err, errInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"success": true, "message": "Password changed"})
}

// POST /auth/forgot-password
func (h *Handler) forgotPassword(c *gin.Context) {
	var dto ForgotPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.ForgotPassword(dto.Email); err != nil {
		if errors.Is(err, errUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"success": true, "message": "Reset code sent"})
}

// POST /auth/reset-password
func (h *Handler) resetPassword(c *gin.Context) {
	var dto ResetPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.ResetPassword(dto.Email, dto.OTP, dto.NewPassword); err != nil {
		switch {
		case errors.Is(err, errInvalidOTP):
			response.BadRequest(c, "Invalid or expired reset code")
		case errors.Is(err, errPasswordTooShort):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"success": true, "message": "Password reset"})
}
