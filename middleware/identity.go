package middleware

import (
	"strings"

	"onehour/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key carrying the authenticated subject.
const IdentityKey = "userID"

// IdentityMiddleware extracts the opaque user identifier from a bearer token
// issued by the external identity service. Identity is optional on every
// endpoint: a missing or invalid token leaves the request anonymous and the
// handler falls back to the body-supplied userId, which is treated as
// untrusted input either way.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if subject, err := utils.ExtractSubjectFromToken(tokenString); err == nil {
				c.Set(IdentityKey, subject)
			}
		}
		c.Next()
	}
}
