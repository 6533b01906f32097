package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "salao/database/repository/user"
	"salao/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// Redis auth cache (falling back to the user document on a miss) and puts
// userID and userRole into the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		ctx := context.Background()
		authCache := utils.GetAuthCacheClient()

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil && cachedHash == computedHash {
			c.Set("userID", userID)
			c.Set("userRole", role)
			c.Next()
			return
		}

		// Cache miss or stale entry: verify against the stored hash.
		usr, err := users.GetByID(userID)
		if err != nil || usr == nil || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, computedHash, 0).Err(); err != nil {
			utils.GetLogger().Warn("auth: failed to refresh token cache", zap.Error(err))
		}

		c.Set("userID", usr.ID)
		c.Set("userRole", usr.Role)
		c.Next()
	}
}
