package middlewares

import (
	"context"
	"net/http"
	"strings"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/models"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a signed service token for machine clients
// (the nightly export job, integrations). Interactive clients use the
// session token header instead; a request carrying neither passes
// through unauthenticated and fails at the @auth directive.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}

		validated, err := utils.JwtValidate(strings.TrimPrefix(auth, "Bearer "))
		if err != nil || !validated.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claim, ok := validated.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		db := config.GetDB()
		var user models.User
		if err := db.WithContext(c.Request.Context()).
			Where("id = ?", claim.ID).Take(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), utils.ContextKeyUsername, user.Username)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
