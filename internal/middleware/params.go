package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-dashboard-api/internal/errors"
)

// RequireID parses the named path parameters as positive integer ids and stores them
// in the context under the parameter name. Any other value is rejected with a 400.
func RequireID(params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, param := range params {
			id, err := strconv.ParseUint(c.Param(param), 10, 64)
			if err != nil || id == 0 {
				apierrors.BadRequest(c, "Invalid "+param)
				c.Abort()
				return
			}
			c.Set(param, id)
		}
		c.Next()
	}
}

// GetID retrieves an id parsed by RequireID
func GetID(c *gin.Context, param string) (uint64, bool) {
	v, exists := c.Get(param)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
