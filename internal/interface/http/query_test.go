package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/listings?"+rawQuery, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestListingFilterFromQuery_Defaults(t *testing.T) {
	f := listingFilterFromQuery(ctxWithQuery(t, ""))

	assert.Equal(t, "available", f.Status)
	assert.Empty(t, f.Category)
	assert.Empty(t, f.Location)
	assert.Empty(t, f.Search)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
}

func TestListingFilterFromQuery_StatusOverride(t *testing.T) {
	f := listingFilterFromQuery(ctxWithQuery(t, "status=sold"))
	assert.Equal(t, "sold", f.Status)
}

func TestListingFilterFromQuery_AllParams(t *testing.T) {
	f := listingFilterFromQuery(ctxWithQuery(t, "category=metal&minPrice=10&maxPrice=50&location=chennai&search=scrap"))

	assert.Equal(t, "metal", f.Category)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 10.0, *f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 50.0, *f.MaxPrice)
	assert.Equal(t, "chennai", f.Location)
	assert.Equal(t, "scrap", f.Search)
}

func TestListingFilterFromQuery_BadNumbersIgnored(t *testing.T) {
	f := listingFilterFromQuery(ctxWithQuery(t, "minPrice=abc&maxPrice="))
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
}

func TestPageParams(t *testing.T) {
	page, limit := pageParams(ctxWithQuery(t, ""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = pageParams(ctxWithQuery(t, "page=3&limit=25"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	// Nonsense and out-of-range values fall back.
	page, limit = pageParams(ctxWithQuery(t, "page=-1&limit=9999"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)

	page, limit = pageParams(ctxWithQuery(t, "page=x&limit=y"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}
