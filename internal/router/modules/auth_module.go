package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ISudhan/cleannect-waste-management/internal/application"
	"github.com/ISudhan/cleannect-waste-management/internal/container"
	handlers "github.com/ISudhan/cleannect-waste-management/internal/interface/http"
	"github.com/ISudhan/cleannect-waste-management/internal/interface/middleware"
)

// AuthModule wires registration, login, and the identity echo.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/me

type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    *application.AuthService
}

func NewAuth(h *handlers.AuthHandler, auth *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP()) // 10 req/min per IP

	auth := rg.Group("/auth")
	auth.POST("/register", limiter, m.Handler.Register)
	auth.POST("/login", limiter, m.Handler.Login)

	auth.GET("/me", middleware.Auth(m.Auth), m.Handler.Me)
}
