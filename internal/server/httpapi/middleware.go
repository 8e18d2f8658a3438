package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/identity"
)

// requireAuth verifies the bearer token, checks the session registry, and
// stores the request identity on the request context. A structurally valid
// token absent from the registry is rejected: revocation wins.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := s.signer.Verify(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		active, err := s.sessions.IsActive(c.Request.Context(), token)
		if err != nil || !active {
			abortUnauthenticated(c)
			return
		}

		ctx := identity.WithIdentity(c.Request.Context(), identity.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requireAdmin gates a route group to admin identities. Must run after
// requireAuth.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := identity.RequireAdmin(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, Result{Code: 1, Message: "forbidden"})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return strings.TrimSpace(header)
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Result{Code: 1, Message: "unauthenticated"})
}
