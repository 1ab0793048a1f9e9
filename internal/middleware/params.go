package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/yukikurage/hiring-platform-api/internal/errors"
)

// RequireUUIDParams rejects requests whose named path parameters are not UUIDs.
func RequireUUIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			if err := uuid.Validate(c.Param(name)); err != nil {
				apierrors.BadRequest(c, "Invalid "+name)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
