package middleware

import (
	"net/http"
	"strings"

	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/gin-gonic/gin"
)

// UserAuth authenticates requests with a user bearer token and sets the
// resolved user in the context. Unauthenticated access answers 403, matching
// the API contract for project-scoped resources.
func UserAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("authentication required"))
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		user, err := auth.Verify(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("authentication required"))
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
