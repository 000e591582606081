package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ISudhan/cleannect-waste-management/internal/application"
	"github.com/ISudhan/cleannect-waste-management/internal/container"
	handlers "github.com/ISudhan/cleannect-waste-management/internal/interface/http"
	"github.com/ISudhan/cleannect-waste-management/internal/interface/middleware"
)

// ListingsModule wires the listing resource routes.
// Public: GET /api/listings, GET /api/listings/:id
// Protected: POST /api/listings, PUT/DELETE /api/listings/:id,
// GET /api/my/listings, GET /api/my/purchases
//
// The caller-scoped reads live under /my rather than /listings/user so
// they cannot collide with the :id wildcard.

type ListingsModule struct {
	Handler *handlers.ListingHandler
	Auth    *application.AuthService
}

func NewListings(h *handlers.ListingHandler, auth *application.AuthService) *ListingsModule {
	return &ListingsModule{Handler: h, Auth: auth}
}

func (m *ListingsModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())

	listings := rg.Group("/listings")
	listings.GET("", publicLimiter, m.Handler.List)
	listings.GET("/:id", publicLimiter, m.Handler.Get)

	protected := listings.Group("")
	protected.Use(
		middleware.Auth(m.Auth),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		protected.POST("", m.Handler.Create)
		protected.PUT("/:id", m.Handler.Update)
		protected.DELETE("/:id", m.Handler.Delete)
	}

	mine := rg.Group("/my")
	mine.Use(
		middleware.Auth(m.Auth),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		mine.GET("/listings", m.Handler.MyListings)
		mine.GET("/purchases", m.Handler.Purchases)
	}
}
