package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// listingFilterFromQuery translates the listing enumeration query
// parameters into the structured predicate. Status defaults to
// "available" here, explicitly, unless the caller overrides it.
// Unparsable numeric bounds are treated as absent.
func listingFilterFromQuery(c *gin.Context) repository.ListingFilter {
	f := repository.ListingFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
		Status:   entity.ListingStatusAvailable,
	}
	if v := c.Query("status"); v != "" {
		f.Status = v
	}
	if v := c.Query("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}

// pageParams reads page and limit with defaults and bounds.
func pageParams(c *gin.Context) (page, limit int) {
	page = positiveInt(c.Query("page"), defaultPage)
	limit = positiveInt(c.Query("limit"), defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func positiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
