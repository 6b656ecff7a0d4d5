package middleware

import (
	"errors"
	"net/http"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectMember resolves the :project_id path parameter, requires the caller
// to be a member of that project, and sets "project" and "role" in the
// context. Non-members get 403; they cannot tell whether the project exists.
func ProjectMember(projects service.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("project_id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}

		user, ok := c.MustGet("user").(*model.User)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr(""))
			return
		}

		project, err := projects.Get(c.Request.Context(), projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr(""))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		role, err := projects.RoleFor(c.Request.Context(), user, projectID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr(""))
			return
		}

		c.Set("project", project)
		c.Set("role", role)
		c.Next()
	}
}

// ProjectAdmin gates mutating project endpoints. Must run after
// ProjectMember.
func ProjectAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != model.RoleProjectAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr(""))
			return
		}
		c.Next()
	}
}
