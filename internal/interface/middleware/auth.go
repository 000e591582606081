package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ISudhan/cleannect-waste-management/internal/application"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
	"github.com/ISudhan/cleannect-waste-management/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "currentUser"
)

// Auth is the single credential-verification guard for every
// identity-scoped route. It reads the Authorization bearer header,
// resolves it to a user via the auth service, and injects the identity
// into the Gin context.
func Auth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "access denied, no token provided", nil)
			return
		}
		u, err := auth.ResolveToken(c.Request.Context(), token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", nil)
			return
		}
		c.Set(CtxUserIDKey, u.ID.Hex())
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentUser returns the identity the Auth guard resolved, or nil on
// routes that did not pass through it.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
