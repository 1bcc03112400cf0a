package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SiddheshKanawade/news-hub-backend/auth"
	"github.com/SiddheshKanawade/news-hub-backend/model"
	"github.com/SiddheshKanawade/news-hub-backend/user"
)

const currentUserKey = "currentUser"

// RequireAuth verifies the bearer token, loads the account it was issued
// for and attaches it to the request context.
func RequireAuth(authService *auth.Service, users *user.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortWith(c, model.Unauthorized("missing authentication token"))
			return
		}

		email, err := authService.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortWith(c, model.Unauthorized("invalid authentication token"))
			return
		}

		u, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			abortWith(c, model.AsAppError(err))
			return
		}
		if u == nil {
			abortWith(c, model.Unauthorized("invalid authentication token"))
			return
		}
		if u.Disabled {
			abortWith(c, model.NotFound("inactive user"))
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the account RequireAuth attached to the context.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}

func abortWith(c *gin.Context, err *model.AppError) {
	c.AbortWithStatusJSON(err.Status, err)
}
