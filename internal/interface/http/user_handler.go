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

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// List GET /api/users - admin only.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		serviceError(c, h.Logger, err, "users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users}, "users", nil)
}

// Get GET /api/users/:id - public profile read.
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, h.Logger, err, "user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "user", nil)
}

// Update PUT /api/users/:id - owner only.
func (h *UserHandler) Update(c *gin.Context) {
	var req application.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req, middleware.CurrentUser(c))
	if err != nil {
		serviceError(c, h.Logger, err, "profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "profile updated successfully", nil)
}

// Delete DELETE /api/users/:id - owner only.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c)); err != nil {
		serviceError(c, h.Logger, err, "account")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "account deleted successfully", nil)
}

// ListByType GET /api/directory/:userType - paged directory of one
// user type, optionally narrowed by location substring.
func (h *UserHandler) ListByType(c *gin.Context) {
	page, limit := pageParams(c)
	users, total, err := h.Svc.ListByType(c.Request.Context(), c.Param("userType"), page, limit, c.Query("location"))
	if err != nil {
		serviceError(c, h.Logger, err, "users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users}, "users", gin.H{"pagination": response.NewPagination(page, limit, total)})
}
