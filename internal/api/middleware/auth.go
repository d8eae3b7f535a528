package middleware

import (
	"net/http"
	"strings"

	"github.com/HoussamELM/PharmaRapide/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticate checks the Bearer token and puts the admin identity into the
// request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims := &auth.JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return auth.JwtSecret, nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// AuthorizeAdmin rejects any authenticated account whose email is not on the
// allow-list. The check runs on every admin request, not only at login, so
// revoked emails lose access immediately.
func AuthorizeAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		emailInterface, exists := c.Get("user_email")
		if !exists {
			// Should not happen when Authenticate runs first.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User email not found in context"})
			return
		}

		email, ok := emailInterface.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User email has an invalid type"})
			return
		}

		if !auth.IsAuthorizedAdmin(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
