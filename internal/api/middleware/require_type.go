package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
)

// RequireType rejects requests whose principal is not one of the
// allowed user types. Role rejections are 401 in this API's contract.
func RequireType(allowed ...models.UserType) gin.HandlerFunc {
	allow := map[models.UserType]struct{}{}
	for _, t := range allowed {
		allow[t] = struct{}{}
	}

	return func(c *gin.Context) {
		p, ok := Principal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "unauthorized",
			})
			return
		}
		if _, ok := allow[p.Type]; !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeForbidden,
				Message: "You don't have permissions to access this resource",
			})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc { return RequireType(models.TypeAdmin) }
