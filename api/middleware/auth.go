package middleware

import (
	"github.com/gin-gonic/gin"

	"medblog/auth"
)

// RequireAuth validates the bearer token on protected routes and stores
// the authenticated userId/email in the gin context.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.TokenFromHeader(c)
		if err != nil {
			auth.Unauthorized(c, err)
			return
		}

		userID, email, err := jwtManager.Parse(token)
		if err != nil {
			auth.Unauthorized(c, err)
			return
		}

		c.Set("userId", userID)
		c.Set("email", email)
		c.Next()
	}
}
