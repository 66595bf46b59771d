package middleware

import (
	"securereq/internal/database"
	"securereq/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser resolves the session's user and stores it on the context for
// handlers to pick up via CurrentUser.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user injected by InjectUser.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
