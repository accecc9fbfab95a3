package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shakil-dev/summer-camp-api/internal/auth"
	"github.com/shakil-dev/summer-camp-api/internal/models"
)

// EmailKey is the gin context key under which RequireAuth stores the verified
// email claim.
const EmailKey = "email"

// RequireAuth verifies the bearer token and injects the email claim into the
// request context.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// UserFinder is the slice of the user store the admin gate needs.
type UserFinder interface {
	FindOne(ctx context.Context, filter bson.M) (*models.User, error)
}

// RequireAdmin must run after RequireAuth. It checks the stored role of the
// authenticated user, not anything carried in the token.
func RequireAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)

		user, err := users.FindOne(c.Request.Context(), bson.M{"email": email})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to verify role"})
			return
		}
		if user == nil || user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}

		c.Next()
	}
}
