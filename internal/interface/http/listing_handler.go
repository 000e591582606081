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

type ListingHandler struct {
	Svc    *application.ListingService
	Logger *logrus.Logger
}

func NewListingHandler(svc *application.ListingService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Logger: logger}
}

// Create POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req application.CreateListingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Create(c.Request.Context(), req, middleware.CurrentUser(c))
	if err != nil {
		serviceError(c, h.Logger, err, "listing")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"listing": l}, "listing created successfully", nil)
}

// List GET /api/listings - filtered, paginated, newest-first.
func (h *ListingHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	listings, total, err := h.Svc.List(c.Request.Context(), listingFilterFromQuery(c), page, limit)
	if err != nil {
		serviceError(c, h.Logger, err, "listings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listings": listings}, "listings", gin.H{"pagination": response.NewPagination(page, limit, total)})
}

// Get GET /api/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	l, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, h.Logger, err, "listing")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listing": l}, "listing", nil)
}

// Update PUT /api/listings/:id - seller only.
func (h *ListingHandler) Update(c *gin.Context) {
	var req application.UpdateListingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req, middleware.CurrentUser(c))
	if err != nil {
		serviceError(c, h.Logger, err, "listing")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listing": l}, "listing updated successfully", nil)
}

// Delete DELETE /api/listings/:id - seller only.
func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c)); err != nil {
		serviceError(c, h.Logger, err, "listing")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "listing deleted successfully", nil)
}

// MyListings GET /api/my/listings - every listing the caller owns,
// regardless of status.
func (h *ListingHandler) MyListings(c *gin.Context) {
	listings, err := h.Svc.ListBySeller(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		serviceError(c, h.Logger, err, "listings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listings": listings}, "listings", nil)
}

// Purchases GET /api/my/purchases - purchase history placeholder,
// always an empty page.
func (h *ListingHandler) Purchases(c *gin.Context) {
	purchases, err := h.Svc.Purchases(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		serviceError(c, h.Logger, err, "purchases")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"purchases": purchases}, "purchases", nil)
}
