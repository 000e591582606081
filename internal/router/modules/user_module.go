package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ISudhan/cleannect-waste-management/internal/application"
	"github.com/ISudhan/cleannect-waste-management/internal/container"
	handlers "github.com/ISudhan/cleannect-waste-management/internal/interface/http"
	"github.com/ISudhan/cleannect-waste-management/internal/interface/middleware"
)

// UsersModule wires the user resource routes.
// Public: GET /api/users/:id, GET /api/directory/:userType
// Protected: GET /api/users, PUT /api/users/:id, DELETE /api/users/:id
//
// The type directory sits under /directory so the static segment does
// not collide with the :id wildcard.

type UsersModule struct {
	Handler *handlers.UserHandler
	Auth    *application.AuthService
}

func NewUsers(h *handlers.UserHandler, auth *application.AuthService) *UsersModule {
	return &UsersModule{Handler: h, Auth: auth}
}

func (m *UsersModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP())

	users := rg.Group("/users")
	users.GET("/:id", publicLimiter, m.Handler.Get)

	rg.GET("/directory/:userType", publicLimiter, m.Handler.ListByType)

	protected := users.Group("")
	protected.Use(
		middleware.Auth(m.Auth),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		protected.GET("", m.Handler.List)
		protected.PUT("/:id", m.Handler.Update)
		protected.DELETE("/:id", m.Handler.Delete)
	}
}
