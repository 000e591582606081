package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ISudhan/cleannect-waste-management/internal/application"
	"github.com/ISudhan/cleannect-waste-management/pkg/response"
)

// serviceError maps application-layer failures onto the error taxonomy:
// validation 400, unauthenticated 401, forbidden 403, not found 404,
// anything else 500.
func serviceError(c *gin.Context, logger *logrus.Logger, err error, resource string) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusBadRequest, "validation failed", verr.Fields)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, resource+" not found", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "not authorized to access this "+resource, nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrInvalidToken):
		response.Error[any](c, http.StatusUnauthorized, "invalid token", nil)
	default:
		logger.WithError(err).WithField("resource", resource).Error("unexpected service error")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
	}
}
