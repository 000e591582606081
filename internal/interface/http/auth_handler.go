package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ISudhan/cleannect-waste-management/internal/application"
	"github.com/ISudhan/cleannect-waste-management/internal/interface/middleware"
	"github.com/ISudhan/cleannect-waste-management/pkg/response"
	"github.com/ISudhan/cleannect-waste-management/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req application.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, tok, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		serviceError(c, h.Logger, err, "user")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": u, "token": tok.Value}, "registered successfully", gin.H{"expiresAt": tok.ExpiresAt})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, tok, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		serviceError(c, h.Logger, err, "user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u, "token": tok.Value}, "login successful", gin.H{"expiresAt": tok.ExpiresAt})
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	response.Success(c, http.StatusOK, gin.H{"user": u}, "profile", nil)
}
